// pkg/render/entity_renderer.go
package render

import (
	"cmp"
	"math"
	"slices"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	weaponLength = 14
	gridStep     = 48
	walkBob      = 2
)

// EntityRenderer рисует сущности ECS по глубине
type EntityRenderer struct {
	ecs   *entity.ECS
	items []drawItem
}

type drawItem struct {
	depth int
	id    types.EntityID
	draw  func(screen *ebiten.Image)
}

func NewEntityRenderer(ecs *entity.ECS) *EntityRenderer {
	return &EntityRenderer{ecs: ecs}
}

func (s *EntityRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen)

	s.items = s.items[:0]
	for id, renderable := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		s.items = append(s.items, drawItem{depth: renderable.Depth, id: id, draw: s.entityDrawer(id, pos, renderable)})

		if weapon, ok := s.ecs.Weapons[id]; ok && weapon.Visible {
			s.items = append(s.items, drawItem{depth: config.DepthWeapon, id: id, draw: weaponDrawer(pos, weapon)})
		}
		if bar, ok := s.ecs.HealthBars[id]; ok && bar.Visible {
			s.items = append(s.items, drawItem{depth: config.DepthHealthBar, id: id, draw: healthBarDrawer(bar)})
		}
	}

	slices.SortStableFunc(s.items, func(a, b drawItem) int {
		if c := cmp.Compare(a.depth, b.depth); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	for _, item := range s.items {
		item.draw(screen)
	}
}

func (s *EntityRenderer) drawGrid(screen *ebiten.Image) {
	for x := gridStep; x < config.ScreenWidth; x += gridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := gridStep; y < config.ScreenHeight; y += gridStep {
		vector.StrokeLine(screen, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}
}

func (s *EntityRenderer) entityDrawer(id types.EntityID, pos *component.Position, renderable *component.Renderable) func(*ebiten.Image) {
	base := renderable.Color
	if renderable.Tint != nil {
		base = Tint(base, *renderable.Tint)
	}
	clr := WithAlpha(base, renderable.Alpha)
	x, y := float32(pos.X), float32(pos.Y)

	if renderable.Radius > 0 {
		radius := renderable.Radius * float32(renderable.Scale)
		return func(screen *ebiten.Image) {
			vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		}
	}

	// Второй кадр ходьбы чуть приподнимает спрайт
	if anim, ok := s.ecs.Animations[id]; ok && anim.Frame == 1 {
		y -= walkBob
	}
	w := renderable.Width * float32(renderable.Scale)
	h := renderable.Height * float32(renderable.Scale)

	var facing component.Direction
	_, hasFacing := s.ecs.Facings[id]
	if hasFacing {
		facing = *s.ecs.Facings[id]
	}
	faceColor := WithAlpha(config.PlayerFaceColor, renderable.Alpha)

	return func(screen *ebiten.Image) {
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, clr, true)
		if hasFacing {
			dx, dy := facing.Delta()
			vector.DrawFilledCircle(screen, x+float32(dx)*w/4, y+float32(dy)*h/4, 3, faceColor, true)
		}
	}
}

func weaponDrawer(pos *component.Position, weapon *component.Weapon) func(*ebiten.Image) {
	x := float32(pos.X + weapon.OffsetX)
	y := float32(pos.Y + weapon.OffsetY)
	rad := weapon.Angle * math.Pi / 180
	ex := x + float32(math.Cos(rad))*weaponLength
	ey := y + float32(math.Sin(rad))*weaponLength
	return func(screen *ebiten.Image) {
		vector.StrokeLine(screen, x, y, ex, ey, 3, config.WeaponColor, true)
	}
}

func healthBarDrawer(bar *component.HealthBar) func(*ebiten.Image) {
	x, y := float32(bar.X), float32(bar.Y)
	w, h, fill := float32(bar.Width), float32(bar.Height), float32(bar.FillWidth)
	return func(screen *ebiten.Image) {
		vector.DrawFilledRect(screen, x, y, w, h, config.HealthBarBackground, false)
		if fill > 0 {
			vector.DrawFilledRect(screen, x, y, fill, h, config.HealthBarFill, false)
		}
	}
}
