package system

import (
	"go-action-rpg/internal/entity"
)

// MovementSystem применяет скорость к позициям и не даёт телам выйти за границы мира.
type MovementSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewMovementSystem(ecs *entity.ECS, worldWidth, worldHeight float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, width: worldWidth, height: worldHeight}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		body, hasBody := s.ecs.Bodies[id]
		if !hasBody {
			continue
		}
		halfW, halfH := body.Width/2, body.Height/2
		if pos.X < halfW {
			pos.X = halfW
			vel.X = 0
		} else if pos.X > s.width-halfW {
			pos.X = s.width - halfW
			vel.X = 0
		}
		if pos.Y < halfH {
			pos.Y = halfH
			vel.Y = 0
		} else if pos.Y > s.height-halfH {
			pos.Y = s.height - halfH
			vel.Y = 0
		}
	}
}
