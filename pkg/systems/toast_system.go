package systems

import (
	"log"

	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/ecs"
	"github.com/decker502/confetti/pkg/entities"
)

// ToastSystem 管理提示条的显示时长
type ToastSystem struct {
	entityManager *ecs.EntityManager
}

// NewToastSystem 创建提示条系统
func NewToastSystem(em *ecs.EntityManager) *ToastSystem {
	return &ToastSystem{entityManager: em}
}

// Show 创建一个提示条实体，显示 durationMs 毫秒
func (s *ToastSystem) Show(message string, durationMs float64) ecs.EntityID {
	id := entities.NewToastEntity(s.entityManager, message, durationMs)
	log.Printf("[Toast] %s", message)
	return id
}

// Update 扣减剩余时间，到期的提示条被删除；deltaTime 单位为秒
func (s *ToastSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		toast, ok := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if !UpdateToast(toast, deltaTime*1000) {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.entityManager.RemoveMarkedEntities()
}

// UpdateToast 推进提示条 dtMs 毫秒，返回是否仍然可见
func UpdateToast(t *components.ToastComponent, dtMs float64) bool {
	if dtMs > 0 {
		t.Remaining -= dtMs
	}
	t.Visible = t.Remaining > 0
	return t.Visible
}

// Current 返回最新一条可见的提示，没有时返回 nil
func (s *ToastSystem) Current() *components.ToastComponent {
	var current *components.ToastComponent
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		if toast, ok := ecs.GetComponent[*components.ToastComponent](s.entityManager, id); ok && toast.Visible {
			current = toast
		}
	}
	return current
}
