package config

import "image/color"

// 布局配置常量
// 逻辑屏幕为竖屏手机比例，Ebitengine 负责缩放到实际窗口
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 480

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 800

	// WindowTitle 桌面窗口标题
	WindowTitle = "Confetti"
)

// BackgroundColor 成功页背景色
var BackgroundColor = color.NRGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}
