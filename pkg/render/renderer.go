package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"

	"github.com/decker502/confetti/internal/confetti"
)

// Renderer 将 confetti.Sprite 绘制到 ebiten.Image 上
//
// 每帧调用 SetTarget 设置目标画面，然后交给 confetti.Pool.Draw。
type Renderer struct {
	target *ebiten.Image
	drawn  int
}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetTarget 设置绘制目标，并重置本帧计数
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.target = dst
	r.drawn = 0
}

// DrawnCount 返回本帧已绘制的精灵数量（调试用）
func (r *Renderer) DrawnCount() int {
	return r.drawn
}

// DrawSprite 实现 confetti.Renderer
//
// 非 *ImageTemplate 的模板、空外框和全透明精灵会被跳过。
func (r *Renderer) DrawSprite(s confetti.Sprite) {
	if r.target == nil || s.Bounds.Empty() || s.Opacity == 0 {
		return
	}
	tmpl, ok := s.Template.(*ImageTemplate)
	if !ok || tmpl.img == nil {
		return
	}

	size := tmpl.img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	op := &colorm.DrawImageOptions{}
	op.GeoM = spriteGeoM(s, size.X, size.Y)
	op.Filter = ebiten.FilterLinear

	colorm.DrawImage(r.target, tmpl.img, tintColorM(s.Tint, s.Opacity), op)
	r.drawn++
}

// spriteGeoM 将 w×h 的模板缩放平移到精灵外框
func spriteGeoM(s confetti.Sprite, w, h int) ebiten.GeoM {
	var geoM ebiten.GeoM
	geoM.Scale(float64(s.Bounds.Dx())/float64(w), float64(s.Bounds.Dy())/float64(h))
	geoM.Translate(float64(s.Bounds.Min.X), float64(s.Bounds.Min.Y))
	return geoM
}

// tintColorM 构造 SRC_IN 着色矩阵
//
// 丢弃模板原有颜色、只保留其 alpha 作为遮罩，填充色为 tint，
// 最终 alpha = 模板 alpha × tint alpha × opacity。
func tintColorM(tint color.NRGBA, opacity uint8) colorm.ColorM {
	var cm colorm.ColorM
	alpha := float64(tint.A) / 255 * float64(opacity) / 255
	cm.Scale(0, 0, 0, alpha)
	cm.Translate(float64(tint.R)/255, float64(tint.G)/255, float64(tint.B)/255, 0)
	return cm
}
