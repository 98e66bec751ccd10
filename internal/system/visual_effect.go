// internal/system/visual_effect.go
package system

import (
	"math"

	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и одноразовыми эффектами.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Вспышки урона: альфа ходит туда-обратно
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		renderable, ok := s.ecs.Renderables[id]

		if flash.Timer >= flash.Duration() || flash.HalfPeriod <= 0 {
			delete(s.ecs.DamageFlashes, id)
			if ok {
				renderable.Alpha = 1
			}
			continue
		}
		if ok {
			renderable.Alpha = FlashAlpha(flash.Timer, flash.HalfPeriod, flash.MinAlpha)
		}
	}

	// Одноразовые эффекты исчезают и уничтожаются сами
	for id, effect := range s.ecs.Effects {
		effect.Timer += deltaTime

		if effect.Timer >= effect.Duration {
			s.ecs.RemoveEntity(id)
			continue
		}

		renderable, ok := s.ecs.Renderables[id]
		if ok {
			progress := effect.Timer / effect.Duration
			renderable.Alpha = utils.Lerp(effect.StartAlpha, 0, progress)
			renderable.Scale = utils.Lerp(effect.StartScale, effect.EndScale, progress)
		}
	}
}

// FlashAlpha возвращает прозрачность мигания в момент t.
func FlashAlpha(t, halfPeriod, minAlpha float64) float64 {
	phase := math.Mod(t, halfPeriod*2)
	if phase < halfPeriod {
		return utils.Lerp(1, minAlpha, phase/halfPeriod)
	}
	return utils.Lerp(minAlpha, 1, (phase-halfPeriod)/halfPeriod)
}
