package coachmark

import (
	"sync"
	"time"
)

// State is the observable progress of a coach-mark session.
type State struct {
	// CurrentIndex indexes the sorted orders, not the raw order values.
	CurrentIndex int
	// PopoverVisible gates the popover only; it flips off on every
	// transition so the old popover leaves before the next one appears.
	PopoverVisible bool
	// SessionActive turns false once the session finishes and never back.
	SessionActive bool
	// DescriptionMeasuredHeight is the last measured description height in
	// rows for the current highlight.
	DescriptionMeasuredHeight int
	// Total is the number of registered highlights at the last layout pass.
	Total int
}

// InRange reports whether CurrentIndex addresses a registered highlight.
func (s State) InRange() bool {
	return s.CurrentIndex >= 0 && s.CurrentIndex < s.Total
}

// IsFirst reports whether the session sits on the first highlight.
func (s State) IsFirst() bool {
	return s.CurrentIndex == 0
}

// IsLast reports whether the session sits on the last highlight.
func (s State) IsLast() bool {
	return s.CurrentIndex == s.Total-1
}

// ScheduleKind identifies a deferred callback requested by a transition.
type ScheduleKind int

const (
	// ScheduleShow reveals the popover.
	ScheduleShow ScheduleKind = iota
	// ScheduleTimer fires the auto-advance timer.
	ScheduleTimer
)

// String returns the schedule kind name.
func (k ScheduleKind) String() string {
	switch k {
	case ScheduleShow:
		return "show"
	case ScheduleTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Schedule asks the caller to invoke FireShow or FireTimer with Gen after
// Delay. A generation that is no longer current is ignored on fire, which
// is how pending callbacks are cancelled.
type Schedule struct {
	Kind  ScheduleKind
	Delay time.Duration
	Gen   uint64
}

// Sequence is the coach-mark state machine.
//
// Transitions never start goroutines or timers themselves; they return the
// callbacks they need as Schedules and the owner delivers them back on its
// event loop. A Sequence can be created by the host and handed to the Model
// with WithState to observe progress from outside.
type Sequence struct {
	mu sync.Mutex

	state   State
	mounted bool

	auto         bool
	autoDuration time.Duration

	showGen    uint64
	timerGen   uint64
	timerArmed bool

	onFinished func()
	finished   bool

	observers   map[int]func(State)
	nextObserve int
}

// NewSequence returns an idle sequence in manual mode.
func NewSequence() *Sequence {
	return &Sequence{
		state:        State{SessionActive: true},
		autoDuration: DefaultAutoTransitionDuration,
		observers:    make(map[int]func(State)),
	}
}

func (s *Sequence) setAutoTransition(enabled bool, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = enabled
	if d > 0 {
		s.autoDuration = d
	}
}

func (s *Sequence) setOnFinished(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFinished = fn
}

// SetOnFinished replaces the completion callback. In auto-transition mode
// the callback fixed at construction is kept and false is returned.
func (s *Sequence) SetOnFinished(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auto {
		return false
	}
	s.onFinished = fn
	return true
}

// AutoTransition reports whether the sequence advances on a timer.
func (s *Sequence) AutoTransition() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto
}

// Snapshot returns a copy of the current state.
func (s *Sequence) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnChange registers fn to run after every state change. The returned func
// unregisters it.
func (s *Sequence) OnChange(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObserve
	s.nextObserve++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// PendingTimer reports the generation of the armed auto-advance timer.
func (s *Sequence) PendingTimer() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerGen, s.timerArmed
}

// Mount starts the session: index 0, popover hidden, reveal scheduled after
// the initial delay and, in auto mode, the first timer armed. Mounting twice
// or after finish does nothing.
func (s *Sequence) Mount() []Schedule {
	s.mu.Lock()
	if s.mounted || !s.state.SessionActive {
		s.mu.Unlock()
		return nil
	}
	s.mounted = true
	s.state.CurrentIndex = 0
	s.state.PopoverVisible = false

	s.showGen++
	out := []Schedule{{Kind: ScheduleShow, Delay: InitialShowDelay, Gen: s.showGen}}
	if s.auto {
		out = append(out, s.armLocked())
	}
	return s.unlockAndNotify(out)
}

// Advance moves to the next highlight. It does nothing once finished,
// before mount, or on the last highlight.
func (s *Sequence) Advance() []Schedule {
	s.mu.Lock()
	if !s.movableLocked() || s.state.CurrentIndex >= s.state.Total-1 {
		s.mu.Unlock()
		return nil
	}
	return s.unlockAndNotify(s.moveLocked(s.state.CurrentIndex + 1))
}

// Retreat moves to the previous highlight, clamping at index 0.
func (s *Sequence) Retreat() []Schedule {
	s.mu.Lock()
	if !s.movableLocked() {
		s.mu.Unlock()
		return nil
	}
	if s.state.CurrentIndex <= 0 {
		s.state.CurrentIndex = 0
		s.mu.Unlock()
		return nil
	}
	return s.unlockAndNotify(s.moveLocked(s.state.CurrentIndex - 1))
}

// Skip ends the session from any position.
func (s *Sequence) Skip() bool {
	return s.Finish()
}

// Finish ends the session. Only the first call has an effect and runs the
// completion callback; it reports whether this call finished the session.
func (s *Sequence) Finish() bool {
	s.mu.Lock()
	if !s.state.SessionActive {
		s.mu.Unlock()
		return false
	}
	s.state.SessionActive = false
	s.state.PopoverVisible = false
	s.disarmLocked()
	s.showGen++

	var callback func()
	if !s.finished {
		s.finished = true
		callback = s.onFinished
	}
	s.unlockAndNotify(nil)

	if callback != nil {
		callback()
	}
	return true
}

// FireShow delivers a ScheduleShow. Stale generations are ignored. It
// reports whether the popover became visible.
func (s *Sequence) FireShow(gen uint64) bool {
	s.mu.Lock()
	if !s.state.SessionActive || gen != s.showGen || s.state.PopoverVisible {
		s.mu.Unlock()
		return false
	}
	s.state.PopoverVisible = true
	s.unlockAndNotify(nil)
	return true
}

// FireTimer delivers a ScheduleTimer. On the last highlight the session
// finishes; otherwise it advances and re-arms.
func (s *Sequence) FireTimer(gen uint64) []Schedule {
	s.mu.Lock()
	if !s.state.SessionActive || !s.timerArmed || gen != s.timerGen {
		s.mu.Unlock()
		return nil
	}
	s.timerArmed = false
	if s.state.CurrentIndex >= s.state.Total-1 {
		s.mu.Unlock()
		s.Finish()
		return nil
	}
	return s.unlockAndNotify(s.moveLocked(s.state.CurrentIndex + 1))
}

// SetTotal records the number of registered highlights after a layout pass.
// A shrinking registry may leave CurrentIndex out of range; the overlay then
// renders nothing.
func (s *Sequence) SetTotal(n int) {
	s.mu.Lock()
	if n < 0 {
		n = 0
	}
	if s.state.Total == n {
		s.mu.Unlock()
		return
	}
	s.state.Total = n
	s.unlockAndNotify(nil)
}

// SetDescriptionHeight records the measured height of the current
// description.
func (s *Sequence) SetDescriptionHeight(h int) {
	s.mu.Lock()
	if s.state.DescriptionMeasuredHeight == h {
		s.mu.Unlock()
		return
	}
	s.state.DescriptionMeasuredHeight = h
	s.unlockAndNotify(nil)
}

func (s *Sequence) movableLocked() bool {
	return s.mounted && s.state.SessionActive
}

// moveLocked hides the popover, switches index and schedules the reveal.
// The auto timer is always disarmed before it is re-armed.
func (s *Sequence) moveLocked(index int) []Schedule {
	s.disarmLocked()
	s.state.PopoverVisible = false
	s.state.CurrentIndex = index
	s.state.DescriptionMeasuredHeight = 0

	s.showGen++
	out := []Schedule{{Kind: ScheduleShow, Delay: ShowDelay, Gen: s.showGen}}
	if s.auto {
		out = append(out, s.armLocked())
	}
	return out
}

func (s *Sequence) armLocked() Schedule {
	s.timerGen++
	s.timerArmed = true
	return Schedule{Kind: ScheduleTimer, Delay: s.autoDuration, Gen: s.timerGen}
}

func (s *Sequence) disarmLocked() {
	if s.timerArmed {
		s.timerArmed = false
		s.timerGen++
	}
}

// unlockAndNotify releases the lock and runs observers with the new state
// outside of it, so observers may call back into the sequence.
func (s *Sequence) unlockAndNotify(out []Schedule) []Schedule {
	state := s.state
	observers := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
	return out
}
