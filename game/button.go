package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/dragonboat/assets"
	"github.com/meghashyamc/dragonboat/geometry"
)

type Button struct {
	rect  geometry.Rect
	label string
}

func NewButton(rect geometry.Rect, label string) *Button {
	return &Button{
		rect:  rect,
		label: label,
	}
}

func (b *Button) JustPressed() bool {
	return justPressedInside(b.rect)
}

func (b *Button) Draw(screen *ebiten.Image, enabled bool) {
	fill := color.RGBA{200, 60, 40, 255}
	labelColor := color.Color(color.White)
	if !enabled {
		fill = color.RGBA{90, 90, 90, 255}
		labelColor = color.RGBA{170, 170, 170, 255}
	}

	drawFilledRect(screen, b.rect, fill)
	drawRectangleOutline(screen, b.rect, color.White)
	drawCenteredText(screen, b.label, assets.HUDFont, b.rect.Center(), labelColor)
}
