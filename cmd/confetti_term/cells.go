package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/config"
)

// 一个终端单元格对应的像素尺寸（字符大约是 1:2 的长方形）
const (
	cellWidth  = 8
	cellHeight = 16
)

var shapeGlyphs = map[string]rune{
	"rect":     '▬',
	"square":   '■',
	"circle":   '●',
	"ring":     '○',
	"triangle": '▲',
	"diamond":  '◆',
	"ribbon":   '~',
	"star":     '★',
}

const imageGlyph = '✦'

// pieceTemplate is a sprite template drawn as a single glyph.
type pieceTemplate struct {
	id    string
	glyph rune
}

func (t pieceTemplate) ID() string { return t.id }

func pieceTemplates(pieces []config.PieceConfig) []confetti.Template {
	out := make([]confetti.Template, 0, len(pieces))
	for _, piece := range pieces {
		glyph := imageGlyph
		if g, ok := shapeGlyphs[piece.Shape]; ok {
			glyph = g
		}
		out = append(out, pieceTemplate{id: piece.ID, glyph: glyph})
	}
	return out
}

type cell struct {
	x, y  int
	glyph rune
	color tcell.Color
}

// cellRenderer collects one cell per sprite for the current frame.
type cellRenderer struct {
	cells []cell
}

func newCellRenderer() *cellRenderer {
	return &cellRenderer{}
}

func (r *cellRenderer) reset() {
	r.cells = r.cells[:0]
}

// DrawSprite implements confetti.Renderer.
func (r *cellRenderer) DrawSprite(s confetti.Sprite) {
	tmpl, ok := s.Template.(pieceTemplate)
	if !ok || s.Opacity == 0 {
		return
	}
	x, y := cellAt(s)
	r.cells = append(r.cells, cell{x: x, y: y, glyph: tmpl.glyph, color: shade(s.Tint, s.Opacity)})
}

// cellAt maps the sprite center to a terminal cell.
func cellAt(s confetti.Sprite) (int, int) {
	cx := (s.Bounds.Min.X + s.Bounds.Max.X) / 2
	cy := (s.Bounds.Min.Y + s.Bounds.Max.Y) / 2
	return floorDiv(cx, cellWidth), floorDiv(cy, cellHeight)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// shade fades the tint toward a black background by opacity.
func shade(tint color.NRGBA, opacity uint8) tcell.Color {
	a := int32(tint.A) * int32(opacity) / 255
	return tcell.NewRGBColor(
		int32(tint.R)*a/255,
		int32(tint.G)*a/255,
		int32(tint.B)*a/255,
	)
}
