package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/confetti/pkg/utils"
)

// handleInput 处理点击/触摸和快捷键
func (s *SuccessScene) handleInput() {
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.ExplodeAt(float64(x), float64(y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.ToggleConfetti()
	}
}
