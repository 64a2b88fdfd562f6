package directory

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/userdir/pkg/broadcast"
)

// Region identifies one independently updated part of the page.
type Region uint8

const (
	RegionMessage Region = iota + 1
	RegionSpinner
	RegionCards
)

func (r Region) String() string {
	switch r {
	case RegionMessage:
		return "message"
	case RegionSpinner:
		return "spinner"
	case RegionCards:
		return "cards"
	default:
		return "unknown"
	}
}

// Message is the status line. IsError selects the error style.
type Message struct {
	Text    string
	IsError bool
}

// Snapshot is a consistent copy of every region.
type Snapshot struct {
	Message Message
	Loading bool
	Cards   []User
}

// subscriberBuffer is sized so one fetch (message, spinner on, cards,
// spinner off) never overflows a reader that is mid-write.
const subscriberBuffer = 32

// Screen holds what the page currently shows and notifies subscribers of
// each region that changed. Unchanged writes are not published.
type Screen struct {
	mu      sync.RWMutex
	message Message
	loading bool
	cards   []User
	closed  bool

	changes *broadcast.Broadcaster[Region]
}

func NewScreen() *Screen {
	return &Screen{changes: broadcast.New[Region](subscriberBuffer)}
}

// ShowMessage sets the status line; an empty text clears it.
func (s *Screen) ShowMessage(text string, isError bool) {
	m := Message{Text: text, IsError: isError && text != ""}
	s.update(RegionMessage, func() bool {
		if s.message == m {
			return false
		}
		s.message = m
		return true
	})
}

// ShowSpinner toggles the loading indicator.
func (s *Screen) ShowSpinner(show bool) {
	s.update(RegionSpinner, func() bool {
		if s.loading == show {
			return false
		}
		s.loading = show
		return true
	})
}

// SetCards replaces the card grid with one card per user, in order.
func (s *Screen) SetCards(users []User) {
	s.update(RegionCards, func() bool {
		if slices.Equal(s.cards, users) {
			return false
		}
		s.cards = slices.Clone(users)
		return true
	})
}

// ClearCards empties the card grid.
func (s *Screen) ClearCards() {
	s.SetCards(nil)
}

func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Message: s.message,
		Loading: s.loading,
		Cards:   slices.Clone(s.cards),
	}
}

// Subscribe streams the regions that change after the call. The channel is
// closed when ctx is done, the subscriber falls behind, or the screen closes.
func (s *Screen) Subscribe(ctx context.Context) *broadcast.Subscription[Region] {
	return s.changes.Subscribe(ctx)
}

// Watchers reports the number of live subscriptions.
func (s *Screen) Watchers() int {
	return s.changes.Len()
}

// Closed reports whether Close was called.
func (s *Screen) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Close ends every subscription.
func (s *Screen) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.changes.Close()
}

func (s *Screen) update(region Region, apply func() bool) {
	s.mu.Lock()
	changed := apply()
	s.mu.Unlock()
	if changed {
		s.changes.Publish(region)
	}
}
