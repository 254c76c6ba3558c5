package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the app (the success screen hosting the confetti burst).
type Scene interface {
	// Update advances the scene. deltaTime is in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
