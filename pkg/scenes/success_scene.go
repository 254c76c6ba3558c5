package scenes

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/ecs"
	"github.com/decker502/confetti/pkg/entities"
	"github.com/decker502/confetti/pkg/game"
	"github.com/decker502/confetti/pkg/render"
	"github.com/decker502/confetti/pkg/systems"
)

// SuccessSceneOptions 创建成功页所需的依赖
type SuccessSceneOptions struct {
	Config    *config.ConfettiConfig
	Templates []confetti.Template
	Settings  *game.SettingsManager // 可为 nil
	Audio     *game.AudioManager    // 可为 nil

	// Density 设备密度系数（dp -> px）
	Density float64
	// Rand 随机源，nil 时由 Pool 自行创建
	Rand *rand.Rand
	// Clock 帧时间源，nil 时使用系统时钟
	Clock confetti.Clock

	// Width/Height 屏幕尺寸（像素）
	Width, Height int
}

// SuccessScene 成功页：图标弹入 + 彩带爆炸
//
// 窗口第一次获得焦点时触发一次：图标开始弹入动画，彩带从相对原点爆开。
// 之后点击/触摸在指针位置再次爆开，R 清空，C 开关彩带（持久化）。
type SuccessScene struct {
	cfg       *config.ConfettiConfig
	templates []confetti.Template
	settings  *game.SettingsManager
	audio     *game.AudioManager

	pool     *confetti.Pool
	renderer *render.Renderer

	entityManager *ecs.EntityManager
	bounceSystem  *systems.BounceSystem
	iconRender    *systems.IconRenderSystem
	toastSystem   *systems.ToastSystem
	iconEntity    ecs.EntityID

	width, height int
	density       float64

	// redrawPending 由 Pool 的重绘请求置位，Update 只在置位时推进一帧
	redrawPending bool
	triggered     bool

	// isFocused 默认为 ebiten.IsFocused，测试中替换
	isFocused func() bool
}

// NewSuccessScene 创建成功页场景
func NewSuccessScene(opts SuccessSceneOptions) (*SuccessScene, error) {
	if opts.Config == nil {
		return nil, errors.New("success scene: nil config")
	}
	density := opts.Density
	if density <= 0 {
		density = 1
	}

	s := &SuccessScene{
		cfg:           opts.Config,
		templates:     opts.Templates,
		settings:      opts.Settings,
		audio:         opts.Audio,
		renderer:      render.NewRenderer(),
		entityManager: ecs.NewEntityManager(),
		width:         opts.Width,
		height:        opts.Height,
		density:       density,
		isFocused:     ebiten.IsFocused,
	}

	pool, err := confetti.NewPool(opts.Config.Burst, confetti.Env{
		Density:       density,
		Rand:          opts.Rand,
		Clock:         opts.Clock,
		RequestRedraw: s.requestRedraw,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create confetti pool: %w", err)
	}
	s.pool = pool

	s.bounceSystem = systems.NewBounceSystem(s.entityManager)
	s.iconRender = systems.NewIconRenderSystem(s.entityManager)
	s.toastSystem = systems.NewToastSystem(s.entityManager)

	log.Printf("[Scene] 成功页已创建: %dx%d, density=%.2f, templates=%d",
		s.width, s.height, density, len(s.templates))
	return s, nil
}

func (s *SuccessScene) requestRedraw() {
	s.redrawPending = true
}

// Update 推进场景；deltaTime 单位为秒
func (s *SuccessScene) Update(deltaTime float64) {
	s.handleInput()
	s.step(deltaTime, s.isFocused())
}

// step 不依赖 ebiten 输入的场景逻辑
func (s *SuccessScene) step(deltaTime float64, focused bool) {
	if focused && !s.triggered {
		s.triggered = true
		s.startAllAnimations()
	}

	s.bounceSystem.Update(deltaTime)
	s.toastSystem.Update(deltaTime)

	if s.redrawPending {
		s.redrawPending = false
		s.pool.Tick()
	}
}

// startAllAnimations 首次获得焦点时播放图标弹入和彩带爆炸
func (s *SuccessScene) startAllAnimations() {
	log.Printf("[Scene] 窗口获得焦点，开始播放动画")
	s.startIconBounce()

	x, y := s.Origin()
	s.ExplodeAt(x, y)
}

func (s *SuccessScene) startIconBounce() {
	if s.iconEntity != 0 {
		s.entityManager.DestroyEntity(s.iconEntity)
		s.entityManager.RemoveMarkedEntities()
	}
	x, y := s.Origin()
	s.iconEntity = entities.NewSuccessIconEntity(s.entityManager, s.cfg.Icon, x, y, s.density)
}

// Origin 返回相对原点对应的屏幕坐标
func (s *SuccessScene) Origin() (float64, float64) {
	return s.cfg.Origin.X * float64(s.width), s.cfg.Origin.Y * float64(s.height)
}

// ExplodeAt 在 (x, y) 爆开一批新彩带，替换当前批次
//
// 彩带被关闭时不做任何事；没有可用图形或颜色时显示提示条。
func (s *SuccessScene) ExplodeAt(x, y float64) {
	if s.settings != nil && !s.settings.GetSettings().ConfettiEnabled {
		log.Printf("[Scene] 彩带已关闭，跳过爆炸")
		return
	}

	if err := s.pool.Explode(s.templates, s.cfg.Colors(), x, y); err != nil {
		log.Printf("[Scene] 未加载到彩带资源，跳过爆炸效果: %v", err)
		s.toastSystem.Show(s.cfg.Toast.Message, float64(s.cfg.Toast.DurationMs))
		return
	}

	if s.audio != nil {
		s.audio.PlayChime()
	}
}

// Reset 清空当前彩带
func (s *SuccessScene) Reset() {
	s.pool.Reset()
}

// ToggleConfetti 开关彩带并持久化；关闭时清空当前彩带
func (s *SuccessScene) ToggleConfetti() bool {
	if s.settings == nil {
		return true
	}
	enabled := !s.settings.GetSettings().ConfettiEnabled
	s.settings.SetConfettiEnabled(enabled)
	if err := s.settings.Save(); err != nil {
		log.Printf("[Scene] 保存设置失败: %v", err)
	}
	if !enabled {
		s.pool.Reset()
	}
	log.Printf("[Scene] 彩带开关: %v", enabled)
	return enabled
}

// Resize 更新屏幕尺寸；图标跟随相对原点移动
func (s *SuccessScene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.iconEntity); ok {
		pos.X, pos.Y = s.Origin()
	}
}

// SetDensity 修改密度系数，对下一次爆炸生效
func (s *SuccessScene) SetDensity(density float64) {
	if density <= 0 || density == s.density {
		return
	}
	s.density = density
	s.pool.SetDensity(density)
	if icon, ok := ecs.GetComponent[*components.IconComponent](s.entityManager, s.iconEntity); ok {
		icon.Radius = s.cfg.Icon.Radius * density
	}
}

// Draw 绘制背景、图标、彩带和提示条
func (s *SuccessScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.iconRender.Draw(screen)

	s.renderer.SetTarget(screen)
	s.pool.Draw(s.renderer)

	s.toastSystem.DrawToast(screen)
}

// SaveOnExit 实现 game.Saveable
func (s *SuccessScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[Scene] 退出时保存设置失败: %v", err)
		return false
	}
	return true
}

// Pool 返回彩带池（调试工具用）
func (s *SuccessScene) Pool() *confetti.Pool {
	return s.pool
}
