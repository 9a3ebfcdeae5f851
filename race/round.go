package race

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/meghashyamc/dragonboat/logger"
)

// Config for a round. Nil fields get production defaults.
type Config struct {
	Clock  clockwork.Clock
	Roller Roller
	Logger logger.Logger
}

// Round runs one race at a time. All methods must be called from the same
// goroutine; Poll delivers clock ticks on that goroutine.
type Round struct {
	id            uuid.UUID
	state         State
	actionEnabled bool
	outcome       *Outcome

	ticker   *Ticker
	opponent *Opponent
	sink     Sink
	logger   logger.Logger
}

func NewRound(sink Sink, cfg *Config) *Round {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.Roller == nil {
		c.Roller = NewRoller(0)
	}
	if c.Logger == nil {
		c.Logger = logger.New("info")
	}

	return &Round{
		state:    State{Status: StatusIdle},
		ticker:   NewTicker(c.Clock, TickInterval),
		opponent: NewOpponent(c.Roller),
		sink:     sink,
		logger:   c.Logger,
	}
}

// StartRound resets the state and starts the countdown. Calling it mid-round
// abandons the current round.
func (r *Round) StartRound() {
	r.ticker.Stop()
	if r.state.Status == StatusActive {
		r.logger.Info("round abandoned", "round_id", r.id, "time_remaining", r.state.TimeRemaining)
	}

	r.id = uuid.New()
	r.state = newState()
	r.outcome = nil
	r.actionEnabled = true

	r.sink.SetActionEnabled(true)
	r.refresh()
	r.ticker.Start()

	r.logger.Info("round started", "round_id", r.id, "time_limit", TimeLimit)
}

// OnPlayerAction advances the player by one stride. Ignored unless the round is active.
func (r *Round) OnPlayerAction() {
	if r.state.Status != StatusActive || !r.actionEnabled {
		return
	}

	r.state.PlayerProgress = min(r.state.PlayerProgress+PlayerStride, WinningDistance)
	r.state.ActionCount++
	r.refresh()

	// resolve before any pending tick can run
	if r.state.PlayerProgress >= WinningDistance {
		r.resolve(ReasonWin)
	}
}

// Poll runs at most one pending tick. It never blocks.
func (r *Round) Poll() {
	select {
	case <-r.ticker.C():
		r.Tick()
	default:
	}
}

// Tick counts down one second and moves the opponent. Ignored unless the round is active.
func (r *Round) Tick() {
	if r.state.Status != StatusActive {
		return
	}

	r.state.TimeRemaining--
	r.state.OpponentProgress = r.opponent.Advance(r.state.OpponentProgress)
	r.refresh()

	r.logger.Debug("tick", "round_id", r.id, "time_remaining", r.state.TimeRemaining, "opponent_progress", r.state.OpponentProgress)

	if r.state.TimeRemaining <= 0 {
		r.ticker.Stop()
		r.resolve(ReasonTimeUp)
	}
}

// Stop halts the countdown without resolving the round.
func (r *Round) Stop() {
	r.ticker.Stop()
}

func (r *Round) State() State {
	return r.state
}

// Outcome returns the result of the last finished round.
func (r *Round) Outcome() (Outcome, bool) {
	if r.outcome == nil {
		return Outcome{}, false
	}

	return *r.outcome, true
}

// TickerRunning reports whether a countdown is scheduled.
func (r *Round) TickerRunning() bool {
	return r.ticker.Running()
}

func (r *Round) resolve(reason Reason) {
	if r.state.Status == StatusEnded {
		return
	}

	r.ticker.Stop()
	r.actionEnabled = false
	r.state.Status = StatusEnded
	r.sink.SetActionEnabled(false)

	outcome := Resolve(reason, r.state)
	r.outcome = &outcome

	r.logger.Info("round ended",
		"round_id", r.id,
		"reason", reason.String(),
		"classification", outcome.Classification.String(),
		"player_progress", r.state.PlayerProgress,
		"opponent_progress", r.state.OpponentProgress,
		"action_count", r.state.ActionCount,
	)

	r.sink.ShowResult(outcome.Classification, outcome.Title, outcome.Message)
}

func (r *Round) refresh() {
	r.sink.RenderProgress(r.state.PlayerProgress, r.state.OpponentProgress)
	r.sink.RenderActionCount(r.state.ActionCount)
	r.sink.RenderTimeRemaining(max(0, r.state.TimeRemaining))
}
