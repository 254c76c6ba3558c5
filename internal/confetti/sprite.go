package confetti

import (
	"image"
	"image/color"
)

// Template is an immutable, shareable sprite source (the loaded image data).
// Renderers type-assert it to their own concrete template type.
type Template interface {
	ID() string
}

// Sprite is the per-particle drawable state derived from a Template.
// It is a value: copying a Sprite yields an independent instance, so tinting or
// fading one particle never affects another particle using the same template.
type Sprite struct {
	Template Template
	Tint     color.NRGBA     // fill color, replaces the template color (SRC_IN)
	Opacity  uint8           // 0-255
	Bounds   image.Rectangle // destination box on the drawing surface
}

// NewSprite instantiates an opaque sprite of tmpl tinted with tint.
func NewSprite(tmpl Template, tint color.NRGBA) Sprite {
	return Sprite{
		Template: tmpl,
		Tint:     tint,
		Opacity:  255,
	}
}

// Renderer draws sprites onto a host surface.
type Renderer interface {
	DrawSprite(s Sprite)
}

// ARGB converts a packed 0xAARRGGBB color.
func ARGB(v uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
