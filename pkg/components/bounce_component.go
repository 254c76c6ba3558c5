package components

// BounceComponent 弹入动画组件
// 用于成功图标：延迟后在 DurationMs 内从 0 放大到 1，带过冲回弹
//
// 最终缩放 = Scale，透明度 = Alpha（两者都由 BounceSystem 计算）
type BounceComponent struct {
	// DelayMs 动画开始前的延迟（毫秒）
	DelayMs float64

	// DurationMs 动画持续时间（毫秒）
	DurationMs float64

	// Tension 过冲张力，越大回弹越明显（0 = 无过冲）
	Tension float64

	// Elapsed 已经过的时间（毫秒，包含延迟）
	Elapsed float64

	// Scale 当前缩放（过冲阶段会超过 1.0）
	Scale float64

	// Alpha 当前透明度（0.0 - 1.0）
	Alpha float64

	// Completed 动画是否已结束
	Completed bool
}

// IconComponent 成功图标的绘制参数
type IconComponent struct {
	// Radius 图标半径（缩放为 1.0 时，像素）
	Radius float64
}
