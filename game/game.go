package game

import (
	"image/color"

	"github.com/meghashyamc/dragonboat/config"
	"github.com/meghashyamc/dragonboat/geometry"
	"github.com/meghashyamc/dragonboat/logger"
	"github.com/meghashyamc/dragonboat/race"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 960
	screenHeight = 540
)

type GameState int

const (
	GameStateRacing GameState = iota
	GameStateResult
)

type Game struct {
	cfg           *config.Config
	round         *race.Round
	hud           *HUD
	paddleButton  *Button
	restartButton *Button
	logger        logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.New(cfg.GetLogLevel())
	hud := NewHUD()

	g := &Game{
		cfg: cfg,
		round: race.NewRound(hud, &race.Config{
			Roller: race.NewRoller(cfg.GetRandomSeed()),
			Logger: log,
		}),
		hud:           hud,
		paddleButton:  NewButton(geometry.NewRect(screenWidth/2-120, screenHeight-100, 240, 64), "PADDLE (Space)"),
		restartButton: NewButton(geometry.NewRect(screenWidth/2-120, screenHeight/2+20, 240, 56), "Race again (R)"),
		logger:        log,
	}

	g.logger.Info("game initialized", "random_seed", cfg.GetRandomSeed(), "time_limit_seconds", race.TimeLimit)
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()
	g.restart()
	defer g.round.Stop()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

func (g *Game) state() GameState {
	if g.hud.ResultVisible() {
		return GameStateResult
	}
	return GameStateRacing
}

func (g *Game) Update() error {
	g.hud.Update()

	switch g.state() {
	case GameStateRacing:
		return g.updateRacing()
	case GameStateResult:
		return g.updateResult()
	}
	return nil
}

func (g *Game) updateRacing() error {
	// A stroke is handled before the pending tick, so a finishing stroke beats the clock.
	if g.hud.ActionEnabled() && g.actionTriggered() {
		g.round.OnPlayerAction()
	}

	g.round.Poll()
	return nil
}

func (g *Game) actionTriggered() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || g.paddleButton.JustPressed()
}

func (g *Game) updateResult() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		g.restartButton.JustPressed() {
		g.restart()
	}
	return nil
}

func (g *Game) restart() {
	g.logger.Debug("restarting race")
	g.hud.HideResult()
	g.round.StartRound()
}

func (g *Game) Draw(screen *ebiten.Image) {
	// River
	screen.Fill(color.RGBA{30, 80, 130, 255})

	g.hud.drawRace(screen)
	g.paddleButton.Draw(screen, g.hud.ActionEnabled())

	if g.state() == GameStateResult {
		g.hud.drawResult(screen)
		g.restartButton.Draw(screen, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
