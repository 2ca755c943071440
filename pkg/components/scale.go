package components

// ScaleComponent 缩略图内部图片的缩放因子
// 以图片中心为锚点，叠加在 cover-fit 缩放之上，超出遮罩的部分被裁剪
//
// 最终缩放 = Cover.Scale * ScaleComponent.ScaleX
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，1.1 = 悬停放大）
	ScaleX float64

	// ScaleY Y轴缩放因子
	ScaleY float64
}

// NewScaleComponent 返回 1.0 缩放
func NewScaleComponent() *ScaleComponent {
	return &ScaleComponent{ScaleX: 1, ScaleY: 1}
}
