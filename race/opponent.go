package race

import (
	"math"
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/meghashyamc/dragonboat/race Roller
type Roller interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewRoller returns a seeded Roller. A zero seed uses the current time.
func NewRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// Opponent is the computer boat. It never wins on its own; only the
// clock or the player can end a round.
type Opponent struct {
	roller Roller
}

func NewOpponent(roller Roller) *Opponent {
	return &Opponent{roller: roller}
}

// Stride draws a distance uniformly from [OpponentMinStride, OpponentMaxStride).
func (o *Opponent) Stride() float64 {
	stride := OpponentMinStride + o.roller.Float64()*(OpponentMaxStride-OpponentMinStride)
	// rolls just under 1 can round up to the upper bound
	if stride >= OpponentMaxStride {
		stride = math.Nextafter(OpponentMaxStride, OpponentMinStride)
	}

	return stride
}

// Advance returns progress moved forward by one stride, clamped to the finish line.
func (o *Opponent) Advance(progress float64) float64 {
	return math.Min(progress+o.Stride(), WinningDistance)
}
