package ui

import (
	"fmt"

	"go-action-rpg/internal/config"
	"go-action-rpg/internal/event"
	"go-action-rpg/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LevelBanner показывает надпись о новом уровне, подписан на LevelChanged.
type LevelBanner struct {
	Message string
	Timer   float64
	face    font.Face
}

func NewLevelBanner(face font.Face) *LevelBanner {
	return &LevelBanner{face: face}
}

// OnEvent реагирует на повышение уровня игрока.
func (b *LevelBanner) OnEvent(e event.Event) {
	if e.Type != event.LevelChanged {
		return
	}
	if data, ok := e.Data.(event.PlayerStatData); ok {
		b.Message = fmt.Sprintf("LEVEL UP! LV %d", data.Level)
	} else {
		b.Message = "LEVEL UP!"
	}
	b.Timer = config.LevelUpBannerTime
}

// Visible сообщает, нужно ли рисовать надпись.
func (b *LevelBanner) Visible() bool {
	return b.Timer > 0
}

func (b *LevelBanner) Update(deltaTime float64) {
	if b.Timer > 0 {
		b.Timer -= deltaTime
	}
}

func (b *LevelBanner) Draw(screen *ebiten.Image) {
	if !b.Visible() {
		return
	}
	bounds := text.BoundString(b.face, b.Message)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight / 3
	alpha := b.Timer / config.LevelUpBannerTime
	text.Draw(screen, b.Message, b.face, x, y, render.WithAlpha(config.LevelUpTint, alpha))
}
