// Confetti 成功页演示
//
// 窗口获得焦点后播放成功图标弹入动画和一次彩带爆炸。
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-verbose   输出详细日志
//	-seed      随机种子（0 = 使用当前时间）
//	-config    彩带配置文件（默认使用嵌入的 data/confetti.yaml）
//	-mute      不初始化音频
//
// Controls:
//
//	鼠标点击/触摸  在指针位置再次爆炸
//	R              清空彩带
//	C              开关彩带（会被保存）
//	F11            切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/confetti/pkg/app"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	seed       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	configPath = flag.String("config", "", "Confetti config file (default: embedded data/confetti.yaml)")
	mute       = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
