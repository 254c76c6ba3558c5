// Package render 提供彩带精灵在 Ebitengine 上的绘制实现
package render

import "github.com/hajimehoshi/ebiten/v2"

// ImageTemplate 是共享的精灵图像（白色图形或 PNG）
//
// 模板本身不可变；颜色、透明度和外框由每个粒子的 confetti.Sprite 单独保存。
type ImageTemplate struct {
	id  string
	img *ebiten.Image
}

// NewImageTemplate 用已加载的图像创建模板
func NewImageTemplate(id string, img *ebiten.Image) *ImageTemplate {
	return &ImageTemplate{id: id, img: img}
}

// ID 实现 confetti.Template
func (t *ImageTemplate) ID() string {
	return t.id
}

// Image 返回模板图像
func (t *ImageTemplate) Image() *ebiten.Image {
	return t.img
}
