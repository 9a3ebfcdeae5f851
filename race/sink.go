package race

// Sink receives round state for display. The round calls into it; it never calls back.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_sink.go github.com/meghashyamc/dragonboat/race Sink
type Sink interface {
	// RenderProgress takes both boats' progress in [0, 100].
	RenderProgress(player, opponent float64)
	RenderActionCount(count int)
	// RenderTimeRemaining takes whole seconds, never negative.
	RenderTimeRemaining(seconds int)
	ShowResult(classification Classification, title, message string)
	SetActionEnabled(enabled bool)
}
