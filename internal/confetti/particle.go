package confetti

import (
	"image"
	"math"
)

// Particle is one confetti piece.
//
// Position is in pixels, velocity in pixels per PositionTimeScale milliseconds.
// Age and Lifetime are milliseconds.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size   int // 直径（像素）
	Sprite Sprite

	Gravity float64
	Damping float64

	Alpha    float64 // 0-1
	Age      int64
	Lifetime int64

	// 生成参数，仅用于调试和验证
	LaunchAngle float64 // 度
	Force       float64
}

// Alive reports whether the particle still takes part in updates and drawing.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// Update advances the particle by dt milliseconds.
func (p *Particle) Update(dt int64, cfg *Config) {
	if dt < 0 {
		dt = 0
	}
	step := float64(dt)

	p.X += p.VX * (step / cfg.PositionTimeScale)
	p.Y += p.VY * (step / cfg.PositionTimeScale)

	// 水平阻尼；垂直方向不做阻尼，让重力主导
	p.VX *= p.Damping

	p.VY += p.Gravity * (step / cfg.GravityTimeScale)

	p.Age += dt
	p.Alpha = FadeAlpha(p.Age, p.Lifetime, cfg.FadeThreshold)
}

// Bounds returns the square draw box of Size centered at the particle position.
func (p *Particle) Bounds() image.Rectangle {
	half := p.Size / 2
	x, y := int(p.X), int(p.Y)
	return image.Rect(x-half, y-half, x+half, y+half)
}

// FadeAlpha computes the opacity at age for a particle of the given lifetime.
//
// Alpha stays 1 until age passes lifetime*threshold, then decreases linearly to 0
// over the remaining (1-threshold) fraction of the lifetime.
func FadeAlpha(age, lifetime int64, threshold float64) float64 {
	if lifetime <= 0 {
		return 0
	}
	if float64(age) <= float64(lifetime)*threshold {
		return 1
	}
	remaining := math.Max(0, float64(lifetime-age))
	return clamp01(remaining / (float64(lifetime) * (1 - threshold)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
