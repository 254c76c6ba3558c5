package confetti

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"time"
)

var (
	// ErrNoTemplates is returned by Explode when no sprite template is supplied.
	ErrNoTemplates = errors.New("confetti: no sprite templates")
	// ErrNoColors is returned by Explode when no color is supplied.
	ErrNoColors = errors.New("confetti: no colors")
)

// Env is what the host provides to a Pool.
type Env struct {
	// Density 设备密度系数（dp -> px），<= 0 时按 1 处理
	Density float64
	// Rand 随机源，nil 时使用基于当前时间的随机源
	Rand *rand.Rand
	// Clock 帧时间源，nil 时使用 SystemClock
	Clock Clock
	// RequestRedraw 请求宿主在下一次刷新时再调用一次 Tick，可为 nil
	RequestRedraw func()
}

// Pool holds the current burst and drives its frame loop.
//
// A Pool is not safe for concurrent use; the host calls every method from its
// render goroutine.
type Pool struct {
	cfg     Config
	density float64
	rng     *rand.Rand
	clock   Clock
	redraw  func()

	particles  []*Particle
	animating  bool
	lastFrame  int64
	firstFrame bool
}

// NewPool validates cfg and creates an idle pool.
func NewPool(cfg Config, env Env) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pool{
		cfg:     cfg,
		density: env.Density,
		rng:     env.Rand,
		clock:   env.Clock,
		redraw:  env.RequestRedraw,
	}
	if p.density <= 0 {
		p.density = 1
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.clock == nil {
		p.clock = SystemClock{}
	}
	return p, nil
}

// Config returns the pool's tunables.
func (p *Pool) Config() Config {
	return p.cfg
}

// Density returns the density factor used for new bursts.
func (p *Pool) Density() float64 {
	return p.density
}

// SetDensity changes the density factor for subsequent bursts.
func (p *Pool) SetDensity(density float64) {
	if density > 0 {
		p.density = density
	}
}

// Explode replaces the pool content with a fresh burst centered at (originX, originY).
//
// Templates and colors are drawn uniformly with replacement. With an empty list the
// pool is left untouched.
func (p *Pool) Explode(templates []Template, colors []color.NRGBA, originX, originY float64) error {
	if len(templates) == 0 {
		return ErrNoTemplates
	}
	if len(colors) == 0 {
		return ErrNoColors
	}

	cfg := &p.cfg
	particles := make([]*Particle, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		tmpl := templates[p.rng.Intn(len(templates))]
		tint := colors[p.rng.Intn(len(colors))]

		sizeDp := cfg.MinSizeDp + p.rng.Float64()*(cfg.MaxSizeDp-cfg.MinSizeDp)
		sizePx := int(sizeDp * p.density)
		if sizePx < 1 {
			sizePx = 1
		}

		angle := cfg.AngleStartDeg + p.rng.Float64()*cfg.AngleSpreadDeg
		force := cfg.MinForce + p.rng.Float64()*(cfg.MaxForce-cfg.MinForce)
		speed := force * p.density * cfg.SpeedScale

		rad := angle * math.Pi / 180
		particles = append(particles, &Particle{
			X:           originX,
			Y:           originY,
			VX:          math.Cos(rad) * speed,
			VY:          math.Sin(rad) * speed,
			Size:        sizePx,
			Sprite:      NewSprite(tmpl, tint),
			Gravity:     cfg.Gravity,
			Damping:     cfg.Damping,
			Alpha:       1,
			Lifetime:    cfg.LifetimeMs,
			LaunchAngle: angle,
			Force:       force,
		})
	}

	p.particles = particles
	p.lastFrame = p.clock.NowMillis()
	p.firstFrame = true
	p.animating = true
	p.requestRedraw()
	return nil
}

// Reset drops every particle and stops the loop.
func (p *Pool) Reset() {
	p.particles = nil
	p.animating = false
	p.firstFrame = false
	p.requestRedraw()
}

// Tick advances one frame and reports whether the animation continues.
//
// When at least one particle was alive another redraw is requested; when none was,
// the pool is cleared and becomes idle without requesting anything.
func (p *Pool) Tick() bool {
	if !p.animating || len(p.particles) == 0 {
		return false
	}

	now := p.clock.NowMillis()
	dt := p.frameDelta(now)
	p.lastFrame = now

	alive := 0
	for _, pt := range p.particles {
		if !pt.Alive() {
			continue
		}
		pt.Update(dt, &p.cfg)
		alive++
	}

	if alive == 0 {
		p.particles = nil
		p.animating = false
		return false
	}

	p.requestRedraw()
	return true
}

// Draw renders every visible particle.
func (p *Pool) Draw(r Renderer) {
	for _, pt := range p.particles {
		if !pt.Alive() || pt.Alpha <= 0 {
			continue
		}
		pt.Sprite.Opacity = uint8(math.Round(clamp01(pt.Alpha) * 255))
		pt.Sprite.Bounds = pt.Bounds()
		r.DrawSprite(pt.Sprite)
	}
}

// frameDelta returns the clamped step since the previous frame.
func (p *Pool) frameDelta(now int64) int64 {
	if p.firstFrame {
		p.firstFrame = false
		return 0
	}
	dt := now - p.lastFrame
	if dt < 0 {
		return 0
	}
	if dt > p.cfg.FrameCapMs {
		return p.cfg.FrameCapMs
	}
	return dt
}

func (p *Pool) requestRedraw() {
	if p.redraw != nil {
		p.redraw()
	}
}

// Animating reports whether a burst is in progress.
func (p *Pool) Animating() bool {
	return p.animating
}

// Len returns the number of particles in the current batch, dead ones included.
func (p *Pool) Len() int {
	return len(p.particles)
}

// AliveCount returns the number of live particles.
func (p *Pool) AliveCount() int {
	n := 0
	for _, pt := range p.particles {
		if pt.Alive() {
			n++
		}
	}
	return n
}

// Particles returns a snapshot of the current batch.
func (p *Pool) Particles() []Particle {
	out := make([]Particle, len(p.particles))
	for i, pt := range p.particles {
		out[i] = *pt
	}
	return out
}
