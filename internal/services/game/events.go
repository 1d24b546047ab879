package game

import "github.com/pecas-dev/twistcaller/internal/models"

// EventType identifies what a game event describes
type EventType string

const (
	// EventRosterChanged fires when a player is added or removed
	EventRosterChanged EventType = "roster_changed"

	// EventPhaseChanged fires on every turn-pipeline transition
	EventPhaseChanged EventType = "phase_changed"

	// EventSpin fires when a new (color, limb) pair has been drawn
	EventSpin EventType = "spin"

	// EventChallenge fires when a challenge applies to the current spin
	EventChallenge EventType = "challenge"

	// EventCountdownTick fires once per second while the countdown runs
	EventCountdownTick EventType = "countdown_tick"

	// EventGameEnded fires when the host ends the game
	EventGameEnded EventType = "game_ended"
)

// Event is one state change pushed to subscribers so the presentation
// layer can render without polling core state
type Event struct {
	Type EventType `json:"type"`

	// Session is a snapshot taken when the event fired
	Session *models.GameSession `json:"session,omitempty"`

	// Players carries the rotation on roster events
	Players []string `json:"players,omitempty"`

	// Spin carries the draw on spin events
	Spin *models.SpinResult `json:"spin,omitempty"`

	// Challenge carries the fired challenge on challenge events
	Challenge *models.Challenge `json:"challenge,omitempty"`

	// Countdown carries the timer state on tick events
	Countdown *models.CountdownState `json:"countdown,omitempty"`
}

// subscriberBuffer is the per-listener channel depth; slow listeners
// drop events rather than block the pipeline
const subscriberBuffer = 16

func (s *service) publish(event Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a listener for game events
func (s *service) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	unsubscribe := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
	}

	return ch, unsubscribe
}
