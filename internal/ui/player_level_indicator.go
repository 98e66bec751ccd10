// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-action-rpg/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
	face font.Face
}

const (
	xpBarWidth      = 180
	xpBarHeight     = 8
	levelRectWidth  = 10
	levelRectHeight = 8
	levelRectGap    = 4
	maxLevelRects   = 10
	borderWidth     = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, face font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, face: face}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Белая обводка полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть полосы опыта
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * FillRatio(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.HUDXPColor, true)
	}

	// 3. Прямоугольники уровня, после десятого остаётся только число
	rectY := i.Y + xpBarHeight + 6
	for j := 0; j < maxLevelRects; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, config.HUDXPColor, true)
		}
	}

	label := fmt.Sprintf("LV %d  XP %d/%d", level, currentXP, xpToNext)
	text.Draw(screen, label, i.face, int(i.X), int(rectY)+levelRectHeight+14, config.TextLightColor)
}
