package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/confetti/internal/confetti"
)

type foreignTemplate struct{}

func (foreignTemplate) ID() string { return "foreign" }

// TestSpriteGeoM 模板缩放平移到精灵外框
func TestSpriteGeoM(t *testing.T) {
	s := confetti.Sprite{Bounds: image.Rect(90, 40, 110, 60)}
	geoM := spriteGeoM(s, 64, 64)

	tests := []struct {
		name         string
		srcX, srcY   float64
		wantX, wantY float64
	}{
		{"左上", 0, 0, 90, 40},
		{"右下", 64, 64, 110, 60},
		{"中心", 32, 32, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := geoM.Apply(tt.srcX, tt.srcY)
			if math.Abs(x-tt.wantX) > 0.001 || math.Abs(y-tt.wantY) > 0.001 {
				t.Errorf("Apply(%v,%v) = (%v,%v), want (%v,%v)", tt.srcX, tt.srcY, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestTintColorM SRC_IN 着色：源颜色被替换，只保留源 alpha
func TestTintColorM(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	tests := []struct {
		name    string
		src     color.Color
		opacity uint8
		want    color.NRGBA
	}{
		{"白色模板", color.White, 255, color.NRGBA{R: 255, A: 255}},
		{"彩色模板颜色被替换", color.NRGBA{R: 10, G: 200, B: 30, A: 255}, 255, color.NRGBA{R: 255, A: 255}},
		{"半透明", color.White, 128, color.NRGBA{R: 255, A: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := tintColorM(red, tt.opacity)
			got := color.NRGBAModel.Convert(cm.Apply(tt.src)).(color.NRGBA)
			if absDiff(got.R, tt.want.R) > 2 || absDiff(got.G, tt.want.G) > 2 ||
				absDiff(got.B, tt.want.B) > 2 || absDiff(got.A, tt.want.A) > 2 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDrawSpriteSkips 不可绘制的精灵被跳过
func TestDrawSpriteSkips(t *testing.T) {
	tmpl := NewImageTemplate("piece", ebiten.NewImage(8, 8))
	box := image.Rect(0, 0, 10, 10)

	tests := []struct {
		name   string
		sprite confetti.Sprite
		want   int
	}{
		{"正常绘制", confetti.Sprite{Template: tmpl, Tint: color.NRGBA{A: 255}, Opacity: 255, Bounds: box}, 1},
		{"外部模板类型", confetti.Sprite{Template: foreignTemplate{}, Opacity: 255, Bounds: box}, 0},
		{"空外框", confetti.Sprite{Template: tmpl, Opacity: 255}, 0},
		{"全透明", confetti.Sprite{Template: tmpl, Opacity: 0, Bounds: box}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer()
			r.SetTarget(ebiten.NewImage(32, 32))
			r.DrawSprite(tt.sprite)
			if r.DrawnCount() != tt.want {
				t.Errorf("DrawnCount() = %d, want %d", r.DrawnCount(), tt.want)
			}
		})
	}

	t.Run("无目标", func(t *testing.T) {
		r := NewRenderer()
		r.DrawSprite(tests[0].sprite)
		if r.DrawnCount() != 0 {
			t.Error("没有目标时不应绘制")
		}
	})
}

// TestShapes 内置图形
func TestShapes(t *testing.T) {
	shapes := KnownShapes()
	if len(shapes) != 8 {
		t.Errorf("expected 8 shapes, got %d: %v", len(shapes), shapes)
	}
	for _, name := range []string{"rect", "circle", "triangle", "star", "ribbon"} {
		if !IsKnownShape(name) {
			t.Errorf("IsKnownShape(%q) = false", name)
		}
	}
	if IsKnownShape("hexagon") {
		t.Error("IsKnownShape(hexagon) = true")
	}
	if _, err := NewShapeImage("hexagon"); err == nil {
		t.Error("NewShapeImage should reject unknown shapes")
	}
}

// TestPolygonFan 三角扇索引覆盖每一条边
func TestPolygonFan(t *testing.T) {
	pts := starPoints(32, 32, 32, 12, 5)
	if len(pts) != 10 {
		t.Fatalf("star points: got %d, want 10", len(pts))
	}

	vs, is := polygonFan(pts)
	if len(vs) != 11 {
		t.Errorf("vertices: got %d, want 11", len(vs))
	}
	if len(is) != 30 {
		t.Errorf("indices: got %d, want 30", len(is))
	}
	if math.Abs(float64(vs[0].DstX-32)) > 0.001 || math.Abs(float64(vs[0].DstY-32)) > 0.001 {
		t.Errorf("centroid = (%v,%v), want (32,32)", vs[0].DstX, vs[0].DstY)
	}
	// 最后一个三角形闭合回第一个顶点
	if is[len(is)-1] != 1 {
		t.Errorf("fan not closed: last index %d", is[len(is)-1])
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
