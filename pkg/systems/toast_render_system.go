package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// debug 字体的字形尺寸
	toastGlyphWidth  = 6
	toastGlyphHeight = 16
	toastPadding     = 8
	toastBottomGap   = 48
)

var toastBackground = color.NRGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xDD}

// DrawToast 在屏幕底部居中绘制当前提示
func (s *ToastSystem) DrawToast(screen *ebiten.Image) {
	toast := s.Current()
	if toast == nil || screen == nil {
		return
	}
	size := screen.Bounds().Size()
	x, y, w, h := toastLayout(toast.Message, size.X, size.Y)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), toastBackground, true)
	ebitenutil.DebugPrintAt(screen, toast.Message, x+toastPadding, y+toastPadding)
}

// toastLayout 返回提示条背景框的位置和尺寸
func toastLayout(message string, screenW, screenH int) (x, y, w, h int) {
	w = len([]rune(message))*toastGlyphWidth + toastPadding*2
	h = toastGlyphHeight + toastPadding*2
	x = (screenW - w) / 2
	y = screenH - toastBottomGap - h
	return x, y, w, h
}
