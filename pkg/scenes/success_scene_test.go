package scenes

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/ecs"
	"github.com/decker502/confetti/pkg/game"
	"github.com/decker502/confetti/pkg/render"
)

const frameMs = 50

type sceneHarness struct {
	scene    *SuccessScene
	clock    *confetti.ManualClock
	settings *game.SettingsManager
}

func newSceneHarness(t *testing.T, templates []confetti.Template) *sceneHarness {
	t.Helper()
	if templates == nil {
		templates = []confetti.Template{
			render.NewImageTemplate("piece1", ebiten.NewImage(8, 8)),
			render.NewImageTemplate("piece2", ebiten.NewImage(8, 8)),
		}
	}

	cfg := config.DefaultConfettiConfig()
	clock := &confetti.ManualClock{Now: 1000}
	settings := game.NewSettingsManager(nil)
	scene, err := NewSuccessScene(SuccessSceneOptions{
		Config:    &cfg,
		Templates: templates,
		Settings:  settings,
		Density:   1,
		Rand:      rand.New(rand.NewSource(42)),
		Clock:     clock,
		Width:     480,
		Height:    800,
	})
	if err != nil {
		t.Fatalf("NewSuccessScene() error: %v", err)
	}
	scene.isFocused = func() bool { return false }
	return &sceneHarness{scene: scene, clock: clock, settings: settings}
}

// frame 推进一帧：先走时钟，再更新场景
func (h *sceneHarness) frame(focused bool) {
	h.clock.Advance(frameMs)
	h.scene.step(float64(frameMs)/1000, focused)
}

// TestSuccessSceneTriggersOnFirstFocus 首次获得焦点时只触发一次
func TestSuccessSceneTriggersOnFirstFocus(t *testing.T) {
	h := newSceneHarness(t, nil)
	pool := h.scene.Pool()

	h.frame(false)
	if pool.Animating() {
		t.Fatal("should not explode before focus")
	}

	h.frame(true)
	if !pool.Animating() || pool.Len() != 60 {
		t.Fatalf("after focus: animating=%v len=%d, want true 60", pool.Animating(), pool.Len())
	}
	x, y := h.scene.Origin()
	if x != 240 || y != 280 {
		t.Errorf("Origin() = (%v,%v), want (240,280)", x, y)
	}
	for _, p := range pool.Particles() {
		if p.X != 240 || p.Y != 280 || p.Age != 0 {
			t.Fatalf("first frame should leave particles at origin: %+v", p)
		}
	}

	if !ecs.HasComponent[*components.BounceComponent](h.scene.entityManager, h.scene.iconEntity) {
		t.Error("icon bounce should start with the explosion")
	}

	// 焦点切换不会再次触发
	h.frame(false)
	h.frame(true)
	for _, p := range pool.Particles() {
		if p.Age != 2*frameMs {
			t.Fatalf("burst restarted: age=%d, want %d", p.Age, 2*frameMs)
		}
	}
}

// TestSuccessSceneRunsToIdle 彩带全部消失后不再请求重绘
func TestSuccessSceneRunsToIdle(t *testing.T) {
	h := newSceneHarness(t, nil)
	h.frame(true)

	frames := 1
	for h.scene.Pool().Animating() && frames < 200 {
		h.frame(true)
		frames++
	}

	if h.scene.Pool().Animating() {
		t.Fatal("animation did not finish")
	}
	// 2500ms / 50ms = 50 帧推进，再加首帧和清空帧
	if frames != 52 {
		t.Errorf("frames to idle: got %d, want 52", frames)
	}
	if h.scene.redrawPending {
		t.Error("no redraw should be pending once idle")
	}
	if h.scene.Pool().Len() != 0 {
		t.Errorf("pool should be cleared, len=%d", h.scene.Pool().Len())
	}
}

// TestSuccessSceneNoTemplatesShowsToast 没有图形时显示提示条
func TestSuccessSceneNoTemplatesShowsToast(t *testing.T) {
	h := newSceneHarness(t, []confetti.Template{})
	h.frame(true)

	if h.scene.Pool().Animating() {
		t.Error("pool should stay idle without templates")
	}
	toast := h.scene.toastSystem.Current()
	if toast == nil {
		t.Fatal("expected a toast")
	}
	if toast.Message != config.DefaultConfettiConfig().Toast.Message {
		t.Errorf("toast message = %q", toast.Message)
	}

	// 2000ms 后消失
	for i := 0; i < 2000/frameMs; i++ {
		h.frame(true)
	}
	if h.scene.toastSystem.Current() != nil {
		t.Error("toast should expire after 2000ms")
	}
}

// TestSuccessSceneToggleConfetti 关闭彩带会清空并阻止后续爆炸
func TestSuccessSceneToggleConfetti(t *testing.T) {
	h := newSceneHarness(t, nil)
	h.frame(true)

	if enabled := h.scene.ToggleConfetti(); enabled {
		t.Fatal("first toggle should disable confetti")
	}
	if h.settings.GetSettings().ConfettiEnabled {
		t.Error("setting should be persisted as disabled")
	}
	if h.scene.Pool().Len() != 0 {
		t.Error("disabling should clear the current burst")
	}

	h.scene.ExplodeAt(10, 10)
	if h.scene.Pool().Animating() {
		t.Error("ExplodeAt should be ignored while disabled")
	}

	if enabled := h.scene.ToggleConfetti(); !enabled {
		t.Fatal("second toggle should enable confetti")
	}
	h.scene.ExplodeAt(10, 10)
	if !h.scene.Pool().Animating() {
		t.Error("ExplodeAt should work after re-enabling")
	}
}

// TestSuccessSceneExplodeAtReplaces 再次爆炸替换当前批次
func TestSuccessSceneExplodeAtReplaces(t *testing.T) {
	h := newSceneHarness(t, nil)
	h.frame(true)
	h.frame(true)

	h.scene.ExplodeAt(100, 120)
	h.frame(true)

	particles := h.scene.Pool().Particles()
	if len(particles) != 60 {
		t.Fatalf("len=%d, want 60", len(particles))
	}
	for _, p := range particles {
		if p.X != 100 || p.Y != 120 || p.Age != 0 {
			t.Fatalf("particle not from the new burst: %+v", p)
		}
	}

	h.scene.Reset()
	h.frame(true)
	if h.scene.Pool().Len() != 0 || h.scene.Pool().Animating() {
		t.Error("Reset should clear the pool")
	}
}

// TestSuccessSceneResize 图标跟随相对原点
func TestSuccessSceneResize(t *testing.T) {
	h := newSceneHarness(t, nil)
	h.frame(true)

	h.scene.Resize(1000, 2000)
	pos, ok := ecs.GetComponent[*components.PositionComponent](h.scene.entityManager, h.scene.iconEntity)
	if !ok {
		t.Fatal("icon position missing")
	}
	if pos.X != 500 || pos.Y != 700 {
		t.Errorf("icon at (%v,%v), want (500,700)", pos.X, pos.Y)
	}

	h.scene.SetDensity(2)
	icon, _ := ecs.GetComponent[*components.IconComponent](h.scene.entityManager, h.scene.iconEntity)
	if icon.Radius != config.DefaultConfettiConfig().Icon.Radius*2 {
		t.Errorf("icon radius = %v", icon.Radius)
	}
	if h.scene.Pool().Density() != 2 {
		t.Errorf("pool density = %v, want 2", h.scene.Pool().Density())
	}
}

// TestSuccessSceneDraw 每个存活粒子绘制一次
func TestSuccessSceneDraw(t *testing.T) {
	h := newSceneHarness(t, nil)
	h.frame(true)

	screen := ebiten.NewImage(480, 800)
	h.scene.Draw(screen)

	if got := h.scene.renderer.DrawnCount(); got != 60 {
		t.Errorf("DrawnCount() = %d, want 60", got)
	}
}

// TestSuccessSceneSaveOnExit 降级模式下保存总是成功
func TestSuccessSceneSaveOnExit(t *testing.T) {
	h := newSceneHarness(t, nil)
	if !h.scene.SaveOnExit() {
		t.Error("SaveOnExit should succeed without storage")
	}
}
