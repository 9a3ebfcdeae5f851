package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	tests := []struct {
		name  string
		point Vector
		want  bool
	}{
		{name: "inside", point: Vector{X: 50, Y: 40}, want: true},
		{name: "top left corner", point: Vector{X: 10, Y: 20}, want: true},
		{name: "right edge", point: Vector{X: 110, Y: 40}, want: false},
		{name: "bottom edge", point: Vector{X: 50, Y: 70}, want: false},
		{name: "left of rect", point: Vector{X: 9, Y: 40}, want: false},
		{name: "above rect", point: Vector{X: 50, Y: 19}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Contains(tc.point))
		})
	}
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, Vector{X: 60, Y: 45}, NewRect(10, 20, 100, 50).Center())
}

func TestVectorAddScale(t *testing.T) {
	v := Vector{X: 1, Y: 2}.Add(Vector{X: 3, Y: 4}).Scale(2)
	assert.Equal(t, Vector{X: 8, Y: 12}, v)
}
