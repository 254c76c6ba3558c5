package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TemplateResolution 矢量图形模板的边长（像素）
// 绘制时按粒子大小缩放，取较大值保证缩放后边缘平滑
const TemplateResolution = 64

// shapeDrawers 内置彩带图形，全部以白色绘制，供 SRC_IN 着色
var shapeDrawers = map[string]func(dst *ebiten.Image, s float32){
	"rect": func(dst *ebiten.Image, s float32) {
		vector.DrawFilledRect(dst, 0, s*0.25, s, s*0.5, color.White, true)
	},
	"square": func(dst *ebiten.Image, s float32) {
		vector.DrawFilledRect(dst, s*0.1, s*0.1, s*0.8, s*0.8, color.White, true)
	},
	"circle": func(dst *ebiten.Image, s float32) {
		vector.DrawFilledCircle(dst, s/2, s/2, s/2, color.White, true)
	},
	"ring": func(dst *ebiten.Image, s float32) {
		vector.StrokeCircle(dst, s/2, s/2, s*0.4, s*0.15, color.White, true)
	},
	"triangle": func(dst *ebiten.Image, s float32) {
		fillPolygon(dst, []point{{s / 2, 0}, {s, s}, {0, s}})
	},
	"diamond": func(dst *ebiten.Image, s float32) {
		fillPolygon(dst, []point{{s / 2, 0}, {s * 0.8, s / 2}, {s / 2, s}, {s * 0.2, s / 2}})
	},
	"ribbon": func(dst *ebiten.Image, s float32) {
		// 倾斜的细长平行四边形
		fillPolygon(dst, []point{{s * 0.3, 0}, {s, 0}, {s * 0.7, s}, {0, s}})
	},
	"star": func(dst *ebiten.Image, s float32) {
		fillPolygon(dst, starPoints(s/2, s/2, s/2, s/5, 5))
	},
}

// KnownShapes 返回所有内置图形名（已排序）
func KnownShapes() []string {
	names := make([]string, 0, len(shapeDrawers))
	for name := range shapeDrawers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownShape 判断是否为内置图形
func IsKnownShape(shape string) bool {
	_, ok := shapeDrawers[shape]
	return ok
}

// NewShapeImage 绘制一个内置图形模板
func NewShapeImage(shape string) (*ebiten.Image, error) {
	draw, ok := shapeDrawers[shape]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
	img := ebiten.NewImage(TemplateResolution, TemplateResolution)
	draw(img, TemplateResolution)
	return img, nil
}

type point struct {
	x, y float32
}

// starPoints 生成 n 角星的顶点（外、内半径交替）
func starPoints(cx, cy, outer, inner float32, n int) []point {
	pts := make([]point, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		// 从正上方开始
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts = append(pts, point{
			x: cx + r*float32(math.Cos(angle)),
			y: cy + r*float32(math.Sin(angle)),
		})
	}
	return pts
}

var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillPolygon 以质心为中心做三角扇填充
// 只适用于相对质心呈星形的多边形（凸多边形、星形）
func fillPolygon(dst *ebiten.Image, pts []point) {
	if len(pts) < 3 {
		return
	}
	vs, is := polygonFan(pts)
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// polygonFan 生成三角扇顶点和索引，第 0 个顶点为质心
func polygonFan(pts []point) ([]ebiten.Vertex, []uint16) {
	var cx, cy float32
	for _, p := range pts {
		cx += p.x
		cy += p.y
	}
	cx /= float32(len(pts))
	cy /= float32(len(pts))

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, whiteVertex(cx, cy))
	for _, p := range pts {
		vs = append(vs, whiteVertex(p.x, p.y))
	}

	is := make([]uint16, 0, len(pts)*3)
	for i := 1; i <= len(pts); i++ {
		next := i + 1
		if next > len(pts) {
			next = 1
		}
		is = append(is, 0, uint16(i), uint16(next))
	}
	return vs, is
}

func whiteVertex(x, y float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: 1,
		ColorG: 1,
		ColorB: 1,
		ColorA: 1,
	}
}
