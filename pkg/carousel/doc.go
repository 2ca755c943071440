// Package carousel 提供无限滚动轮播的核心计算
//
// 本包不依赖 Ebitengine，只包含纯计算逻辑，便于在没有渲染表面的情况下测试：
//   - layout.go：cover-fit 缩放与行布局
//   - wrap.go：环形回绕定位公式
//   - scroll.go：滚动缓动（一阶跟随 + 指数衰减）与位移滤镜强度
//   - frame.go：逐帧更新函数 Update(Frame, dt) -> Frame
//   - backend.go：渲染与补间的能力接口（Renderer / Tweener）
//
// # 坐标系统
//
// 所有坐标均为逻辑像素，原点为窗口左上角，Y 轴向下。
// 缩略图的 Y 指其遮罩矩形的上边缘。
//
// # 环形布局
//
// N 张缩略图均匀分布在长度为 RingHeight = N * (RowHeight + Margin) 的虚拟环上，
// 任意滚动量下相邻缩略图的间距（对环长取模）恒为 RowHeight + Margin。
package carousel
