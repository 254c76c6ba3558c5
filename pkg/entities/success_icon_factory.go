package entities

import (
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/ecs"
)

// NewSuccessIconEntity 创建成功图标实体
// 参数:
//   - manager: EntityManager 实例
//   - icon: 弹入动画参数（半径单位为 dp）
//   - x, y: 图标中心（像素）
//   - density: dp -> px 系数
//
// 返回: 创建的实体ID
//
// 初始缩放和透明度为 0，由 BounceSystem 推进到 1。
func NewSuccessIconEntity(manager *ecs.EntityManager, icon config.IconConfig, x, y, density float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	manager.AddComponent(id, &components.IconComponent{Radius: icon.Radius * density})
	manager.AddComponent(id, &components.BounceComponent{
		DelayMs:    float64(icon.DelayMs),
		DurationMs: float64(icon.DurationMs),
		Tension:    icon.Tension,
	})

	return id
}

// NewToastEntity 创建提示条实体，显示 durationMs 毫秒
func NewToastEntity(manager *ecs.EntityManager, message string, durationMs float64) ecs.EntityID {
	id := manager.CreateEntity()
	manager.AddComponent(id, &components.ToastComponent{
		Message:   message,
		Remaining: durationMs,
		Visible:   durationMs > 0,
	})
	return id
}
