package scenes

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// FolderPicker 选择图片目录
type FolderPicker interface {
	// PickFolder 阻塞直到用户选择或取消；取消时返回 "" 和 nil
	PickFolder(start string) (string, error)
}

// ZenityPicker 使用系统原生对话框选择目录
type ZenityPicker struct{}

// PickFolder 打开目录选择对话框
func (ZenityPicker) PickFolder(start string) (string, error) {
	opts := []zenity.Option{
		zenity.Title("Open Image Folder"),
		zenity.Directory(),
	}
	if start != "" {
		opts = append(opts, zenity.Filename(start))
	}

	dir, err := zenity.SelectFile(opts...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("folder dialog failed: %w", err)
	}
	return dir, nil
}

// pickResult 后台对话框的结果
type pickResult struct {
	dir string
	err error
}

// pickAsync 在后台 goroutine 中打开对话框，结果写入返回的通道
func pickAsync(p FolderPicker, start string) <-chan pickResult {
	ch := make(chan pickResult, 1)
	go func() {
		dir, err := p.PickFolder(start)
		ch <- pickResult{dir: dir, err: err}
	}()
	return ch
}
