package race_test

import (
	"math"
	"testing"

	"github.com/meghashyamc/dragonboat/race"
	"github.com/meghashyamc/dragonboat/race/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStrideBounds(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want float64
	}{
		{name: "lowest roll", roll: 0, want: 3},
		{name: "middle roll", roll: 0.5, want: 4.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			roller := mocks.NewMockRoller(ctrl)
			roller.EXPECT().Float64().Return(tc.roll)

			assert.Equal(t, tc.want, race.NewOpponent(roller).Stride())
		})
	}
}

func TestStrideStaysBelowMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)
	roller.EXPECT().Float64().Return(math.Nextafter(1, 0))

	stride := race.NewOpponent(roller).Stride()
	assert.Less(t, stride, race.OpponentMaxStride)
	assert.Greater(t, stride, 5.99)
}

func TestSeededRollerStaysInRange(t *testing.T) {
	opponent := race.NewOpponent(race.NewRoller(42))
	for i := 0; i < 10000; i++ {
		stride := opponent.Stride()
		assert.GreaterOrEqual(t, stride, race.OpponentMinStride)
		assert.Less(t, stride, race.OpponentMaxStride)
	}
}

func TestAdvanceClampsAtFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)
	roller.EXPECT().Float64().Return(0.9).Times(2)

	opponent := race.NewOpponent(roller)
	assert.Equal(t, race.WinningDistance, opponent.Advance(98))
	assert.Equal(t, race.WinningDistance, opponent.Advance(race.WinningDistance))
}

func TestSlowestOpponentNeedsThirtyFourTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)
	roller.EXPECT().Float64().Return(0.0).AnyTimes()

	opponent := race.NewOpponent(roller)
	progress := 0.0
	for i := 0; i < 17; i++ {
		progress = opponent.Advance(progress)
	}
	assert.Equal(t, 51.0, progress)

	for i := 17; i < 33; i++ {
		progress = opponent.Advance(progress)
	}
	assert.Equal(t, 99.0, progress)

	progress = opponent.Advance(progress)
	assert.Equal(t, race.WinningDistance, progress)
}
