// Package confetti implements the one-shot confetti burst: a pool of particles
// generated at a single origin and a frame tick that advances, fades and expires them.
//
// The package is renderer-agnostic. Hosts supply sprite templates, a clock and a
// redraw hook, and receive draw calls through the Renderer interface.
package confetti

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid confetti config")

// Config holds every tunable of the burst.
//
// Sizes are density-independent units (dp); multiply by the density factor to get
// pixels. Times are milliseconds. Angles are degrees, 270° points straight up.
type Config struct {
	// Count 每次爆炸生成的粒子数
	Count int `yaml:"count"`

	// MinSizeDp / MaxSizeDp 粒子直径范围（dp）
	MinSizeDp float64 `yaml:"minSizeDp"`
	MaxSizeDp float64 `yaml:"maxSizeDp"`

	// MinForce / MaxForce 爆炸力度范围
	MinForce float64 `yaml:"minForce"`
	MaxForce float64 `yaml:"maxForce"`

	// SpeedScale 力度到像素速度的换算系数: speed = force * density * SpeedScale
	SpeedScale float64 `yaml:"speedScale"`

	// AngleStartDeg / AngleSpreadDeg 发射扇区 [start, start+spread)
	AngleStartDeg  float64 `yaml:"angleStartDeg"`
	AngleSpreadDeg float64 `yaml:"angleSpreadDeg"`

	// Gravity 重力系数（向下加速度）
	Gravity float64 `yaml:"gravity"`
	// Damping 水平速度每帧乘以的阻尼
	Damping float64 `yaml:"damping"`

	// LifetimeMs 粒子存活时间
	LifetimeMs int64 `yaml:"lifetimeMs"`
	// FadeThreshold 生命周期中开始渐隐的比例，取值 [0, 1)
	FadeThreshold float64 `yaml:"fadeThreshold"`

	// FrameCapMs 单帧最大时间步长，防止后台切回时跳跃过大
	FrameCapMs int64 `yaml:"frameCapMs"`

	// PositionTimeScale 位置积分的时间缩放: x += vx * (dt / PositionTimeScale)
	PositionTimeScale float64 `yaml:"positionTimeScale"`
	// GravityTimeScale 重力积分的时间缩放: vy += gravity * (dt / GravityTimeScale)
	GravityTimeScale float64 `yaml:"gravityTimeScale"`
}

// DefaultConfig returns the tuned defaults of the current effect.
func DefaultConfig() Config {
	return Config{
		Count:             60,
		MinSizeDp:         12,
		MaxSizeDp:         30,
		MinForce:          2,
		MaxForce:          15,
		SpeedScale:        0.6,
		AngleStartDeg:     150,
		AngleSpreadDeg:    240,
		Gravity:           0.2,
		Damping:           0.96,
		LifetimeMs:        2500,
		FadeThreshold:     0.2,
		FrameCapMs:        50,
		PositionTimeScale: 10,
		GravityTimeScale:  5,
	}
}

// Validate checks that every field is usable by the simulation.
func (c Config) Validate() error {
	switch {
	case c.Count <= 0:
		return fmt.Errorf("%w: count must be > 0, got %d", ErrInvalidConfig, c.Count)
	case c.MinSizeDp <= 0:
		return fmt.Errorf("%w: minSizeDp must be > 0, got %.2f", ErrInvalidConfig, c.MinSizeDp)
	case c.MaxSizeDp < c.MinSizeDp:
		return fmt.Errorf("%w: size range invalid: min(%.2f) > max(%.2f)", ErrInvalidConfig, c.MinSizeDp, c.MaxSizeDp)
	case c.MinForce < 0:
		return fmt.Errorf("%w: minForce must be >= 0, got %.2f", ErrInvalidConfig, c.MinForce)
	case c.MaxForce < c.MinForce:
		return fmt.Errorf("%w: force range invalid: min(%.2f) > max(%.2f)", ErrInvalidConfig, c.MinForce, c.MaxForce)
	case c.SpeedScale <= 0:
		return fmt.Errorf("%w: speedScale must be > 0, got %.2f", ErrInvalidConfig, c.SpeedScale)
	case c.AngleSpreadDeg <= 0 || c.AngleSpreadDeg > 360:
		return fmt.Errorf("%w: angleSpreadDeg must be in (0, 360], got %.2f", ErrInvalidConfig, c.AngleSpreadDeg)
	case c.Damping < 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping must be in [0, 1], got %.2f", ErrInvalidConfig, c.Damping)
	case c.LifetimeMs <= 0:
		return fmt.Errorf("%w: lifetimeMs must be > 0, got %d", ErrInvalidConfig, c.LifetimeMs)
	case c.FadeThreshold < 0 || c.FadeThreshold >= 1:
		return fmt.Errorf("%w: fadeThreshold must be in [0, 1), got %.2f", ErrInvalidConfig, c.FadeThreshold)
	case c.FrameCapMs <= 0:
		return fmt.Errorf("%w: frameCapMs must be > 0, got %d", ErrInvalidConfig, c.FrameCapMs)
	case c.PositionTimeScale <= 0 || c.GravityTimeScale <= 0:
		return fmt.Errorf("%w: time scales must be > 0, got position=%.2f gravity=%.2f",
			ErrInvalidConfig, c.PositionTimeScale, c.GravityTimeScale)
	}
	return nil
}
