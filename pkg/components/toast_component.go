package components

// ToastComponent 短暂显示的提示条
// 剩余时间为 0 时由 ToastSystem 删除实体
type ToastComponent struct {
	Message   string
	Remaining float64 // 剩余显示时间（毫秒）
	Visible   bool
}
