package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/config"
)

func TestPieceTemplates(t *testing.T) {
	templates := pieceTemplates([]config.PieceConfig{
		{ID: "a", Shape: "star"},
		{ID: "b", Image: "data/pieces/b.png"},
	})
	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(templates))
	}
	if g := templates[0].(pieceTemplate).glyph; g != '★' {
		t.Errorf("star glyph = %q", g)
	}
	if g := templates[1].(pieceTemplate).glyph; g != imageGlyph {
		t.Errorf("image glyph = %q", g)
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		wantX  int
		wantY  int
	}{
		{"原点", image.Rect(-4, -4, 4, 4), 0, 0},
		{"中间", image.Rect(90, 40, 110, 60), 12, 3},
		{"负坐标", image.Rect(-20, -40, -10, -30), -2, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cellAt(confetti.Sprite{Bounds: tt.bounds})
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("cellAt = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestShade(t *testing.T) {
	tint := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got, want := shade(tint, 255), tcell.NewRGBColor(200, 100, 50); got != want {
		t.Errorf("full opacity: got %v, want %v", got, want)
	}
	if got, want := shade(tint, 0), tcell.NewRGBColor(0, 0, 0); got != want {
		t.Errorf("zero opacity: got %v, want %v", got, want)
	}
}

func TestCellRenderer(t *testing.T) {
	tmpl := pieceTemplate{id: "a", glyph: '●'}
	r := newCellRenderer()

	r.DrawSprite(confetti.Sprite{Template: tmpl, Tint: color.NRGBA{R: 255, A: 255}, Opacity: 255, Bounds: image.Rect(0, 0, 16, 16)})
	r.DrawSprite(confetti.Sprite{Template: tmpl, Opacity: 0, Bounds: image.Rect(0, 0, 16, 16)})

	if len(r.cells) != 1 {
		t.Fatalf("cells: got %d, want 1", len(r.cells))
	}
	if c := r.cells[0]; c.x != 1 || c.y != 0 || c.glyph != '●' {
		t.Errorf("cell = %+v", c)
	}

	r.reset()
	if len(r.cells) != 0 {
		t.Error("reset should clear cells")
	}
}
