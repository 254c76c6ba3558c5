package utils

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutOvershoot 回弹缓出（先冲过终点再回落）
// 特点：用于图标"弹出"效果，tension 越大冲过越多，tension=0 退化为三次方缓出 1-(1-t)³
// 公式：f(t) = (t-1)² * ((tension+1)(t-1) + tension) + 1
//
// 返回值在中段会大于 1，调用方需要根据用途自行截断（如透明度）。
func EaseOutOvershoot(t, tension float64) float64 {
	t = Clamp01(t)
	u := t - 1
	return u*u*((tension+1)*u+tension) + 1
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
