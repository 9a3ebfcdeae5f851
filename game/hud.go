package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/dragonboat/assets"
	"github.com/meghashyamc/dragonboat/geometry"
	"github.com/meghashyamc/dragonboat/race"
)

const (
	trackStartX    = 60.0
	trackEndX      = screenWidth - 60.0
	playerLaneY    = 170.0
	opponentLaneY  = 270.0
	laneHeight     = 80.0
	progressBarX   = 180.0
	progressBarW   = 400.0
	progressBarH   = 18.0
	strokeFlashFor = 150 * time.Millisecond
)

type resultView struct {
	classification race.Classification
	title          string
	message        string
}

// HUD keeps the latest snapshot pushed by the round and draws it.
type HUD struct {
	playerProgress   float64
	opponentProgress float64
	actionCount      int
	timeRemaining    int
	actionEnabled    bool
	result           *resultView
	strokeFlash      *Timer
}

func NewHUD() *HUD {
	return &HUD{
		timeRemaining: race.TimeLimit,
		strokeFlash:   NewTimer(strokeFlashFor),
	}
}

func (h *HUD) RenderProgress(player, opponent float64) {
	h.playerProgress = clampValue(player, 0, race.WinningDistance)
	h.opponentProgress = clampValue(opponent, 0, race.WinningDistance)
}

func (h *HUD) RenderActionCount(count int) {
	if count > h.actionCount {
		h.strokeFlash.Reset()
	}
	h.actionCount = count
}

func (h *HUD) RenderTimeRemaining(seconds int) {
	h.timeRemaining = max(0, seconds)
}

func (h *HUD) ShowResult(classification race.Classification, title, message string) {
	h.result = &resultView{
		classification: classification,
		title:          title,
		message:        message,
	}
}

func (h *HUD) SetActionEnabled(enabled bool) {
	h.actionEnabled = enabled
}

func (h *HUD) ActionEnabled() bool {
	return h.actionEnabled
}

func (h *HUD) ResultVisible() bool {
	return h.result != nil
}

func (h *HUD) HideResult() {
	h.result = nil
}

func (h *HUD) Update() {
	h.strokeFlash.Update()
}

func (h *HUD) drawRace(screen *ebiten.Image) {
	drawText(screen, fmt.Sprintf("Time: %d", h.timeRemaining), assets.HUDFont, screenWidth-200, 30, color.White)
	drawText(screen, fmt.Sprintf("Strokes: %d", h.actionCount), assets.HUDFont, screenWidth-200, 70, color.White)

	drawText(screen, "You", assets.HUDFont, trackStartX, 30, color.White)
	h.drawProgressBar(screen, 36, h.playerProgress, color.RGBA{210, 40, 40, 255})
	drawText(screen, "Computer", assets.HUDFont, trackStartX, 70, color.White)
	h.drawProgressBar(screen, 76, h.opponentProgress, color.RGBA{40, 90, 210, 255})

	h.drawLane(screen, playerLaneY, h.playerProgress, assets.PlayerBoatSprite)
	h.drawLane(screen, opponentLaneY, h.opponentProgress, assets.OpponentBoatSprite)

	// finish line
	drawFilledRect(screen, geometry.NewRect(trackEndX, playerLaneY-10, 4, opponentLaneY+laneHeight-playerLaneY+20), color.White)

	if !h.strokeFlash.IsReady() {
		alpha := uint8(255 * (1 - h.strokeFlash.Progress()))
		splash := geometry.NewRect(h.boatX(h.playerProgress)-14, playerLaneY+laneHeight/2, 10, 10)
		drawFilledRect(screen, splash, color.RGBA{alpha, alpha, alpha, alpha})
	}
}

func (h *HUD) drawProgressBar(screen *ebiten.Image, y, progress float64, col color.Color) {
	frame := geometry.NewRect(progressBarX, y, progressBarW, progressBarH)
	fill := frame
	fill.Width = progressBarW * progress / race.WinningDistance

	drawFilledRect(screen, frame, color.RGBA{20, 40, 70, 255})
	if fill.Width > 0 {
		drawFilledRect(screen, fill, col)
	}
	drawRectangleOutline(screen, frame, color.White)
}

func (h *HUD) drawLane(screen *ebiten.Image, y, progress float64, boat *ebiten.Image) {
	lane := geometry.NewRect(trackStartX, y, trackEndX-trackStartX, laneHeight)
	drawRectangleOutline(screen, lane, color.RGBA{120, 170, 220, 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(h.boatX(progress), y+(laneHeight-assets.BoatHeight)/2)
	screen.DrawImage(boat, op)
}

// boatX places the bow on the finish line at full progress.
func (h *HUD) boatX(progress float64) float64 {
	travel := trackEndX - trackStartX - assets.BoatWidth
	return trackStartX + travel*clampValue(progress, 0, race.WinningDistance)/race.WinningDistance
}

func (h *HUD) drawResult(screen *ebiten.Image) {
	if h.result == nil {
		return
	}

	drawFilledRect(screen, geometry.NewRect(0, 0, screenWidth, screenHeight), color.RGBA{0, 0, 0, 190})

	titleColor := color.RGBA{255, 215, 60, 255}
	if h.result.classification == race.PlayerLoss {
		titleColor = color.RGBA{255, 80, 80, 255}
	}

	drawCenteredText(screen, h.result.title, assets.TitleFont, geometry.Vector{X: screenWidth / 2, Y: screenHeight/2 - 110}, titleColor)
	drawCenteredText(screen, h.result.message, assets.HUDFont, geometry.Vector{X: screenWidth / 2, Y: screenHeight/2 - 40}, color.White)
}
