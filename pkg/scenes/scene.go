package scenes

import (
	"github.com/decker502/confetti/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var (
	_ Scene         = (*SuccessScene)(nil)
	_ game.Saveable = (*SuccessScene)(nil)
)
