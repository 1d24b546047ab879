package announce

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/pecas-dev/twistcaller/internal/services/announce Service

// Service speaks announcements one at a time. Starting a new announcement
// cancels whatever is in flight; completion is reported through the
// OnDone callback so callers can chain game-state transitions off it.
type Service interface {
	// Announce speaks a single message
	Announce(ctx context.Context, input *AnnounceInput) error

	// AnnounceSequence speaks messages strictly in order; message i+1
	// starts only after message i has finished
	AnnounceSequence(ctx context.Context, input *AnnounceSequenceInput) error

	// CancelActive stops the in-flight announcement, if any
	CancelActive()
}

// AnnounceInput contains one message to speak
type AnnounceInput struct {
	// Message is the text to speak
	Message string

	// Test forces audio output even when voice is disabled (settings preview)
	Test bool

	// OnDone is invoked once the utterance has finished or was skipped.
	// Not invoked when a newer announcement cancels this one.
	OnDone func()
}

// AnnounceSequenceInput contains an ordered list of messages to speak
type AnnounceSequenceInput struct {
	// Messages are spoken in order
	Messages []string

	// OnDone is invoked once the whole sequence has finished or was
	// skipped. Not invoked when a newer announcement cancels it.
	OnDone func()
}
