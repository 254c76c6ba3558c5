package components

// PositionComponent 实体在逻辑屏幕上的中心坐标（像素）
type PositionComponent struct {
	X, Y float64
}
