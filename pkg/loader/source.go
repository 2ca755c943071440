package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/scrollreel/pkg/embedded"
)

// Source 图片字节来源
//
// Open 可能在多个 goroutine 中并发调用，实现必须是并发安全的。
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

// EmbeddedSource 从嵌入资源（assets/...）读取
type EmbeddedSource struct{}

// Open 打开嵌入文件
func (EmbeddedSource) Open(path string) (io.ReadCloser, error) {
	return embedded.Open(path)
}

// DirSource 从文件系统读取
//
// Root 非空时，相对路径相对于 Root 解析；绝对路径原样使用。
type DirSource struct {
	Root string
}

// Open 打开文件系统中的文件
func (s DirSource) Open(path string) (io.ReadCloser, error) {
	if s.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.Root, path)
	}
	return os.Open(path)
}

// MixedSource 以 "assets/" 开头且存在于嵌入资源的路径读嵌入资源，其余读文件系统
//
// 配置文件中的图片列表可以混用两类路径。
type MixedSource struct{}

// Open 按路径选择来源
func (MixedSource) Open(path string) (io.ReadCloser, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}

// imageExtensions 支持的图片扩展名（与已注册的解码器一致）
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// IsImageFile 按扩展名判断是否为支持的图片文件
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ListImages 列出目录下的图片文件（不递归），按文件名排序
//
// 返回的路径为 filepath.Join(dir, name)，可直接交给 DirSource{} 读取。
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list images in %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
