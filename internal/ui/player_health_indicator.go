// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"go-action-rpg/internal/config"
	"go-action-rpg/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 180
	healthBarHeight = 14
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует полосу здоровья и подпись "текущее/максимум".
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, render.DarkenColor(config.HUDHealthColor), false)

	if fill := float32(healthBarWidth * FillRatio(health, maxHealth)); fill > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, fill, healthBarHeight, config.HUDHealthColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, false)

	healthText := "HP " + strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, healthText, i.face, int(i.X)+4, int(i.Y)+healthBarHeight-3, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return healthBarHeight
}

// FillRatio возвращает долю заполнения полосы в диапазоне [0, 1].
func FillRatio(current, total int) float64 {
	if total <= 0 || current <= 0 {
		return 0
	}
	ratio := float64(current) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
