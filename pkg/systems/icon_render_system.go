package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/ecs"
)

var (
	iconFillColor  = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	iconCheckColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// IconRenderSystem 绘制成功图标（圆形底 + 对勾）
type IconRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewIconRenderSystem 创建图标渲染系统
func NewIconRenderSystem(em *ecs.EntityManager) *IconRenderSystem {
	return &IconRenderSystem{entityManager: em}
}

// Draw 绘制所有带 Position + Icon 的实体；带 Bounce 时应用缩放和透明度
func (s *IconRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.IconComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		icon, _ := ecs.GetComponent[*components.IconComponent](s.entityManager, id)

		scale, alpha := 1.0, 1.0
		if bounce, ok := ecs.GetComponent[*components.BounceComponent](s.entityManager, id); ok {
			scale, alpha = bounce.Scale, bounce.Alpha
		}

		g, ok := iconGeometry(pos.X, pos.Y, icon.Radius, scale)
		if !ok || alpha <= 0 {
			continue
		}

		vector.DrawFilledCircle(screen, g.cx, g.cy, g.radius, withAlpha(iconFillColor, alpha), true)
		check := withAlpha(iconCheckColor, alpha)
		vector.StrokeLine(screen, g.check[0][0], g.check[0][1], g.check[1][0], g.check[1][1], g.stroke, check, true)
		vector.StrokeLine(screen, g.check[1][0], g.check[1][1], g.check[2][0], g.check[2][1], g.stroke, check, true)
	}
}

type iconShape struct {
	cx, cy, radius, stroke float32
	check                  [3][2]float32
}

// iconGeometry 计算缩放后的圆和对勾折线；缩放或半径不为正时返回 false
func iconGeometry(x, y, radius, scale float64) (iconShape, bool) {
	r := radius * scale
	if r <= 0 {
		return iconShape{}, false
	}
	return iconShape{
		cx:     float32(x),
		cy:     float32(y),
		radius: float32(r),
		stroke: float32(r * 0.16),
		check: [3][2]float32{
			{float32(x - r*0.45), float32(y + r*0.02)},
			{float32(x - r*0.12), float32(y + r*0.35)},
			{float32(x + r*0.48), float32(y - r*0.3)},
		},
	}, true
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}
