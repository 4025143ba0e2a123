package coachmark

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// EventType names one of the four navigation signals.
type EventType int

const (
	EventNext EventType = iota
	EventBack
	EventDone
	EventSkip
)

var eventTypes = [...]EventType{EventNext, EventBack, EventDone, EventSkip}

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventNext:
		return "next"
	case EventBack:
		return "back"
	case EventDone:
		return "done"
	case EventSkip:
		return "skip"
	default:
		return "unknown"
	}
}

const subscriberBuffer = 8

// EventSource is a push-based navigation feed for hosts that draw their own
// controls. Each event type is an independent channel; Trigger never
// blocks, and signals beyond a subscriber's buffer are dropped.
type EventSource struct {
	mu   sync.Mutex
	subs map[EventType]map[int]chan struct{}
	next int
}

// NewEventSource returns a source without subscribers.
func NewEventSource() *EventSource {
	return &EventSource{subs: make(map[EventType]map[int]chan struct{})}
}

// Trigger signals every subscriber of t.
func (s *EventSource) Trigger(t EventType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs[t] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe returns a channel receiving t and a func that cancels the
// subscription and closes the channel.
func (s *EventSource) Subscribe(t EventType) (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[t] == nil {
		s.subs[t] = make(map[int]chan struct{})
	}
	id := s.next
	s.next++
	ch := make(chan struct{}, subscriberBuffer)
	s.subs[t][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs[t], id)
			close(ch)
		})
	}
}

// Messages hosts may send with tea.Program.Send instead of going through an
// EventSource.
type (
	NextMsg struct{}
	BackMsg struct{}
	DoneMsg struct{}
	SkipMsg struct{}
)

// eventMsg carries a signal received from a subscribed EventSource.
type eventMsg struct {
	id   int
	kind EventType
	ch   <-chan struct{}
}

func listenCmd(id int, kind EventType, ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return eventMsg{id: id, kind: kind, ch: ch}
	}
}

type subscription struct {
	kind   EventType
	ch     <-chan struct{}
	cancel func()
}

func subscribeAll(src *EventSource) []subscription {
	subs := make([]subscription, 0, len(eventTypes))
	for _, t := range eventTypes {
		ch, cancel := src.Subscribe(t)
		subs = append(subs, subscription{kind: t, ch: ch, cancel: cancel})
	}
	return subs
}
