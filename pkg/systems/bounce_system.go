package systems

import (
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/ecs"
	"github.com/decker502/confetti/pkg/utils"
)

// BounceSystem 推进所有弹入动画
type BounceSystem struct {
	entityManager *ecs.EntityManager
}

// NewBounceSystem 创建弹入动画系统
func NewBounceSystem(em *ecs.EntityManager) *BounceSystem {
	return &BounceSystem{entityManager: em}
}

// Update 推进动画，deltaTime 单位为秒
func (s *BounceSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BounceComponent](s.entityManager) {
		bounce, ok := ecs.GetComponent[*components.BounceComponent](s.entityManager, id)
		if !ok {
			continue
		}
		UpdateBounce(bounce, deltaTime*1000)
	}
}

// UpdateBounce 将弹入动画推进 dtMs 毫秒
//
// 延迟阶段 Scale/Alpha 保持为 0；之后缩放走过冲曲线，透明度截断到 [0, 1]。
func UpdateBounce(b *components.BounceComponent, dtMs float64) {
	if b.Completed {
		return
	}
	if dtMs > 0 {
		b.Elapsed += dtMs
	}

	active := b.Elapsed - b.DelayMs
	if active < 0 {
		b.Scale = 0
		b.Alpha = 0
		return
	}

	if b.DurationMs <= 0 || active >= b.DurationMs {
		b.Scale = 1
		b.Alpha = 1
		b.Completed = true
		return
	}

	eased := utils.EaseOutOvershoot(active/b.DurationMs, b.Tension)
	b.Scale = eased
	b.Alpha = utils.Clamp01(eased)
}
