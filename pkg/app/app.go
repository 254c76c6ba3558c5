// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/game"
	"github.com/decker502/confetti/pkg/scenes"
	"github.com/decker502/confetti/pkg/utils"
)

// AppName 用于 gdata 存储目录
const AppName = "confetti"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 彩带配置文件路径，为空则使用嵌入的 data/confetti.yaml
	ConfigPath string
	// Mute 不初始化音频（无音频设备时使用）
	Mute bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	density       float64
	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	lastUpdate               time.Time
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfettiConfigPath
	}
	confettiConfig, err := config.LoadConfettiConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("彩带配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载彩带配置: %s (%d 种图形, %d 种颜色)",
		configPath, len(confettiConfig.Pieces), len(confettiConfig.Colors()))

	// Android 上 gdata 需要提前创建存储目录
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] 存储目录不可用，设置不会被保存: %v", err)
	}
	settingsManager := game.NewSettingsManager(game.OpenSettingsStorage(AppName))

	var audioManager *game.AudioManager
	if !cfg.Mute {
		audioManager = game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settingsManager)
		log.Printf("[App] AudioManager initialized")
	}

	resourceManager := game.NewResourceManager()
	templates := resourceManager.LoadPieceTemplates(confettiConfig.Pieces)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] Random seed: %d", seed)

	a := &App{
		settingsManager: settingsManager,
		density:         deviceDensity(),
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		scene, err := scenes.NewSuccessScene(scenes.SuccessSceneOptions{
			Config:    confettiConfig,
			Templates: templates,
			Settings:  settingsManager,
			Audio:     audioManager,
			Density:   a.density,
			Rand:      rng,
			Width:     a.width,
			Height:    a.height,
		})
		if err != nil {
			log.Printf("[App] 创建成功页失败: %v", err)
			return nil
		}
		return scene
	})
	sceneManager.Restart()
	if sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("无法创建成功页")
	}
	a.sceneManager = sceneManager

	// 移动端没有窗口，忽略全屏设置
	if settingsManager.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// deviceDensity 返回当前显示器的设备缩放系数，取不到时为 1
func deviceDensity() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭时保存设置（需要 main 中 SetWindowClosingHandled(true)）
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] 退出时保存失败")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	now := time.Now()
	deltaTime := 1.0 / 60.0
	if !a.lastUpdate.IsZero() {
		deltaTime = now.Sub(a.lastUpdate).Seconds()
	}
	a.lastUpdate = now

	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!a.settingsManager.GetSettings().Fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] 保存全屏设置失败: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回屏幕的像素尺寸
//
// 彩带尺寸按 dp 计算，因此屏幕使用设备像素（外部尺寸 × 设备缩放系数），
// 尺寸或缩放变化时同步给当前场景。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	density := deviceDensity()
	w := int(float64(outsideWidth) * density)
	h := int(float64(outsideHeight) * density)
	if w <= 0 || h <= 0 {
		w, h = config.GameWindowWidth, config.GameWindowHeight
	}

	a.width, a.height = w, h
	if scene, ok := a.sceneManager.GetCurrentScene().(*scenes.SuccessScene); ok {
		scene.Resize(w, h)
		if density != a.density {
			a.density = density
			scene.SetDensity(density)
		}
	}
	return w, h
}
