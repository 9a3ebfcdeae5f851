package race

import (
	"fmt"
	"math"
)

type Reason int

const (
	ReasonWin Reason = iota
	ReasonTimeUp
)

func (r Reason) String() string {
	switch r {
	case ReasonWin:
		return "win"
	case ReasonTimeUp:
		return "time_up"
	}
	return "unknown"
}

type Classification int

const (
	PlayerWin Classification = iota
	PlayerLoss
)

func (c Classification) String() string {
	switch c {
	case PlayerWin:
		return "player_win"
	case PlayerLoss:
		return "player_loss"
	}
	return "unknown"
}

// Outcome is the result of a finished round. Progress values are rounded for display.
type Outcome struct {
	Reason           Reason
	Classification   Classification
	PlayerProgress   int
	OpponentProgress int
	ActionCount      int
	TimeLimit        int
	Title            string
	Message          string
}

// Resolve classifies a finished round. A time-up tie goes to the opponent.
func Resolve(reason Reason, state State) Outcome {
	outcome := Outcome{
		Reason:           reason,
		PlayerProgress:   int(math.Round(state.PlayerProgress)),
		OpponentProgress: int(math.Round(state.OpponentProgress)),
		ActionCount:      state.ActionCount,
		TimeLimit:        TimeLimit,
	}

	switch {
	case reason == ReasonWin:
		outcome.Classification = PlayerWin
		outcome.Title = "Player wins!"
		outcome.Message = fmt.Sprintf("You crossed the finish line first with %d paddle strokes.", outcome.ActionCount)
	case state.PlayerProgress > state.OpponentProgress:
		outcome.Classification = PlayerWin
		outcome.Title = "Time's up, you lead!"
		outcome.Message = fmt.Sprintf("You paddled %d%% of the course in %d seconds and beat the computer!", outcome.PlayerProgress, outcome.TimeLimit)
	default:
		outcome.Classification = PlayerLoss
		outcome.Title = "Challenge failed!"
		outcome.Message = fmt.Sprintf("The computer's boat was stronger. You paddled %d%% of the course in %d seconds. Try again!", outcome.PlayerProgress, outcome.TimeLimit)
	}

	return outcome
}
