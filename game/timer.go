package game

import "time"

// Timer counts frames toward a target duration. It drives short HUD effects, not the race clock.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: target,
		targetTime:  target,
	}
}

func (t *Timer) Update() {
	if t.IsReady() {
		return
	}
	t.currentTime += time.Second / 60 // 60 FPS
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}

// Progress returns how far the timer has run, from 0 to 1.
func (t *Timer) Progress() float64 {
	if t.targetTime <= 0 {
		return 1
	}

	return clampValue(float64(t.currentTime)/float64(t.targetTime), 0, 1)
}
