package race

import "time"

const (
	TimeLimit       = 20    // seconds
	WinningDistance = 100.0 // finish line, also 100% on the progress bars

	PlayerStride      = 1.0
	OpponentMinStride = 3.0
	OpponentMaxStride = 6.0 // exclusive

	TickInterval = time.Second
)

type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	}
	return "unknown"
}

// State is a snapshot of one round.
type State struct {
	TimeRemaining    int
	PlayerProgress   float64
	OpponentProgress float64
	ActionCount      int
	Status           Status
}

func newState() State {
	return State{
		TimeRemaining: TimeLimit,
		Status:        StatusActive,
	}
}
