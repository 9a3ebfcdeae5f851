package game

import (
	"cmp"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/dragonboat/geometry"
)

func getCurrentMousePosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}

// justPressedInside reports a fresh left click or touch inside rect.
func justPressedInside(rect geometry.Rect) bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && rect.Contains(getCurrentMousePosition()) {
		return true
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		touchX, touchY := ebiten.TouchPosition(id)
		if rect.Contains(geometry.Vector{X: float64(touchX), Y: float64(touchY)}) {
			return true
		}
	}

	return false
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

func drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, center geometry.Vector, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

func drawFilledRect(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(col)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(pixel, op)
}

func drawRectangleOutline(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	// Create a 1-pixel image to draw lines with
	lineImg := ebiten.NewImage(1, 1)
	lineImg.Fill(col)

	// Draw top line
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, 1)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(lineImg, op)

	// Draw bottom line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, 1)
	op.GeoM.Translate(rect.X, rect.Y+rect.Height-1)
	screen.DrawImage(lineImg, op)

	// Draw left line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(lineImg, op)

	// Draw right line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, rect.Height)
	op.GeoM.Translate(rect.X+rect.Width-1, rect.Y)
	screen.DrawImage(lineImg, op)
}
