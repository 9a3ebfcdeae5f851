package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	BoatWidth  = 120
	BoatHeight = 36
)

var (
	PlayerBoatSprite   *ebiten.Image
	OpponentBoatSprite *ebiten.Image
	HUDFont            *text.GoTextFace
	TitleFont          *text.GoTextFace
)

func init() {
	PlayerBoatSprite = drawBoat(color.RGBA{210, 40, 40, 255})
	OpponentBoatSprite = drawBoat(color.RGBA{40, 90, 210, 255})

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	TitleFont = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
}

// drawBoat paints a dragon boat facing right: hull, a row of paddlers and a gold head at the bow.
func drawBoat(hull color.Color) *ebiten.Image {
	img := ebiten.NewImage(BoatWidth, BoatHeight)

	hullTop := float32(BoatHeight) / 2
	vector.DrawFilledRect(img, 0, hullTop, BoatWidth-12, BoatHeight-hullTop, hull, false)

	paddler := color.RGBA{40, 30, 20, 255}
	for x := float32(14); x < BoatWidth-30; x += 16 {
		vector.DrawFilledRect(img, x, hullTop-10, 8, 10, paddler, false)
	}

	head := color.RGBA{235, 190, 40, 255}
	vector.DrawFilledRect(img, BoatWidth-18, 4, 18, BoatHeight-8, head, false)

	return img
}
