package system

import (
	"image/color"
	"math"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/types"
)

// EffectParams описывает одноразовый визуальный эффект.
type EffectParams struct {
	X, Y     float64
	Color    color.RGBA
	Tint     *color.RGBA
	Alpha    float64 // стартовая прозрачность, к концу эффекта уходит в 0
	Scale    float64 // итоговый масштаб
	Duration float64
	Depth    int
}

// SpawnEffect создаёт эффект, который VisualEffectSystem удалит по истечении Duration.
func SpawnEffect(ecs *entity.ECS, radius float32, p EffectParams) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	ecs.Renderables[id] = &component.Renderable{
		Color:  p.Color,
		Radius: radius,
		Depth:  p.Depth,
		Alpha:  p.Alpha,
		Scale:  1,
		Tint:   p.Tint,
	}
	ecs.Effects[id] = &component.Effect{
		StartAlpha: p.Alpha,
		StartScale: 1,
		EndScale:   p.Scale,
		Duration:   p.Duration,
	}
	return id
}

// StartFlash добавляет или сбрасывает вспышку урона.
func StartFlash(ecs *entity.ECS, id types.EntityID, halfPeriod float64, repeat int, minAlpha float64) {
	ecs.DamageFlashes[id] = &component.DamageFlash{
		HalfPeriod: halfPeriod,
		Repeat:     repeat,
		MinAlpha:   minAlpha,
	}
}

// PlayAnimation переключает анимацию. Если она уже играет, ничего не происходит.
func PlayAnimation(ecs *entity.ECS, id types.EntityID, key string) {
	anim, ok := ecs.Animations[id]
	if !ok {
		return
	}
	if anim.Key == key {
		return
	}
	anim.Key = key
	anim.Frame = 0
	anim.Elapsed = 0
}

// Distance возвращает расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Angle возвращает угол (радианы) направления из первой точки во вторую.
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

func clampDamage(amount int) int {
	if amount < 0 {
		return 0
	}
	return amount
}
