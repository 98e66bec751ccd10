// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"go-action-rpg/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect       image.Rectangle
	Text       string
	bgColor    color.RGBA
	hoverColor color.RGBA
	fgColor    color.RGBA
	face       font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, label string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:       rect,
		Text:       label,
		bgColor:    config.ButtonColor,
		hoverColor: config.ButtonHoverColor,
		fgColor:    config.TextLightColor,
		face:       face,
	}
}

// Draw отрисовывает кнопку. Под курсором кнопка подсвечивается.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	bg := b.bgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.hoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonBorderColor, false)

	bounds := text.BoundString(b.face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.face, textX, textY, b.fgColor)
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *MenuButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли клик по кнопке в этом кадре.
func (b *MenuButton) IsClicked(justPressed bool) bool {
	return justPressed && b.Contains(ebiten.CursorPosition())
}
