package system

import (
	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/entity"
)

// AnimationSystem переключает кадры анимаций по их частоте.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	for _, anim := range s.ecs.Animations {
		def, ok := defs.AnimationLibrary[anim.Key]
		if !ok || def.FrameRate <= 0 || len(def.Frames) == 0 {
			continue
		}

		anim.Elapsed += deltaTime
		frameTime := 1 / def.FrameRate
		for anim.Elapsed >= frameTime {
			anim.Elapsed -= frameTime
			if anim.Frame+1 < len(def.Frames) {
				anim.Frame++
			} else if def.Loop {
				anim.Frame = 0
			} else {
				anim.Elapsed = 0
				break
			}
		}
	}
}
