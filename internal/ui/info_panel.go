// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-action-rpg/internal/config"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 90
	panelWidth     = 260
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel displays information about a selected enemy.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update(ecs *entity.ECS) {
	// Цель погибла, прячем панель
	if p.TargetEntity != 0 && !ecs.Exists(p.TargetEntity) {
		p.Hide()
	}

	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		panelWidth,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == 0 {
		return
	}
	for i, line := range p.Lines(ecs) {
		text.Draw(screen, line, p.fontFace, panelRect.Min.X+12, panelRect.Min.Y+20+i*lineHeight, config.TextLightColor)
	}
}

// Lines возвращает строки описания выбранного врага.
func (p *InfoPanel) Lines(ecs *entity.ECS) []string {
	enemy, ok := ecs.Enemies[p.TargetEntity]
	if !ok {
		return nil
	}
	lines := []string{fmt.Sprintf("Enemy #%d (%s)", p.TargetEntity, enemy.DefID)}
	if health, ok := ecs.Healths[p.TargetEntity]; ok {
		lines = append(lines, fmt.Sprintf("HP: %d/%d  DMG: %d", health.Value, health.Max, enemy.AttackDamage))
	}
	lines = append(lines, fmt.Sprintf("Aggro: %.0f  Reach: %.0f  Speed: %.0f", enemy.AggroRange, enemy.AttackRange, enemy.Speed))
	return lines
}
