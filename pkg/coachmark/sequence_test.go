package coachmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mounted(t *testing.T, total int, auto time.Duration) (*Sequence, []Schedule) {
	t.Helper()
	seq := NewSequence()
	if auto > 0 {
		seq.setAutoTransition(true, auto)
	}
	seq.SetTotal(total)
	return seq, seq.Mount()
}

func only(t *testing.T, scheds []Schedule, kind ScheduleKind) Schedule {
	t.Helper()
	var found []Schedule
	for _, s := range scheds {
		if s.Kind == kind {
			found = append(found, s)
		}
	}
	require.Len(t, found, 1, "expected exactly one %s schedule", kind)
	return found[0]
}

func TestMountSchedulesInitialReveal(t *testing.T) {
	seq, scheds := mounted(t, 3, 0)

	require.Len(t, scheds, 1)
	show := only(t, scheds, ScheduleShow)
	assert.Equal(t, InitialShowDelay, show.Delay)

	st := seq.Snapshot()
	assert.Equal(t, 0, st.CurrentIndex)
	assert.True(t, st.SessionActive)
	assert.False(t, st.PopoverVisible)

	require.True(t, seq.FireShow(show.Gen))
	assert.True(t, seq.Snapshot().PopoverVisible)
	assert.Nil(t, seq.Mount(), "second mount is ignored")
}

func TestStaleShowIsDropped(t *testing.T) {
	seq, scheds := mounted(t, 3, 0)
	initial := only(t, scheds, ScheduleShow)

	next := only(t, seq.Advance(), ScheduleShow)
	assert.Equal(t, ShowDelay, next.Delay)

	assert.False(t, seq.FireShow(initial.Gen))
	assert.False(t, seq.Snapshot().PopoverVisible)
	assert.True(t, seq.FireShow(next.Gen))
}

func TestFinishIsIdempotent(t *testing.T) {
	seq, _ := mounted(t, 3, 0)
	calls := 0
	seq.SetOnFinished(func() { calls++ })

	assert.True(t, seq.Finish())
	assert.False(t, seq.Finish())
	assert.False(t, seq.Skip())

	assert.Equal(t, 1, calls)
	assert.False(t, seq.Snapshot().SessionActive)
}

func TestAdvanceRetreatSymmetry(t *testing.T) {
	seq, _ := mounted(t, 4, 0)
	seq.Advance()
	require.Equal(t, 1, seq.Snapshot().CurrentIndex)

	seq.Advance()
	back := only(t, seq.Retreat(), ScheduleShow)

	st := seq.Snapshot()
	assert.Equal(t, 1, st.CurrentIndex)
	assert.False(t, st.PopoverVisible)

	require.True(t, seq.FireShow(back.Gen))
	assert.True(t, seq.Snapshot().PopoverVisible)
}

func TestRetreatClampsAtZero(t *testing.T) {
	seq, _ := mounted(t, 3, 0)

	assert.Nil(t, seq.Retreat())
	assert.Nil(t, seq.Retreat())
	assert.Equal(t, 0, seq.Snapshot().CurrentIndex)
}

func TestAdvanceStopsAtLast(t *testing.T) {
	seq, _ := mounted(t, 2, 0)
	seq.Advance()

	assert.Nil(t, seq.Advance())
	assert.Equal(t, 1, seq.Snapshot().CurrentIndex)
	assert.True(t, seq.Snapshot().SessionActive)
}

func TestTransitionsIgnoredBeforeMount(t *testing.T) {
	seq := NewSequence()
	seq.SetTotal(3)

	assert.Nil(t, seq.Advance())
	assert.Equal(t, 0, seq.Snapshot().CurrentIndex)
}

func TestTerminalAfterFinish(t *testing.T) {
	seq, _ := mounted(t, 3, 0)
	seq.Advance()
	seq.Finish()

	before := seq.Snapshot()
	assert.Nil(t, seq.Advance())
	assert.Nil(t, seq.Retreat())
	seq.Skip()
	assert.Nil(t, seq.Mount())

	after := seq.Snapshot()
	assert.Equal(t, before.CurrentIndex, after.CurrentIndex)
	assert.False(t, after.SessionActive)
}

func TestAutoTimerLifecycle(t *testing.T) {
	seq, scheds := mounted(t, 3, time.Second)
	calls := 0
	seq.setOnFinished(func() { calls++ })

	timer := only(t, scheds, ScheduleTimer)
	assert.Equal(t, time.Second, timer.Delay)
	gen, armed := seq.PendingTimer()
	require.True(t, armed)
	require.Equal(t, timer.Gen, gen)

	// Arrival at a non-last index arms exactly one new timer.
	timer = only(t, seq.FireTimer(timer.Gen), ScheduleTimer)
	assert.Equal(t, 1, seq.Snapshot().CurrentIndex)

	timer = only(t, seq.FireTimer(timer.Gen), ScheduleTimer)
	assert.Equal(t, 2, seq.Snapshot().CurrentIndex)

	// Firing on the last index finishes and arms nothing.
	assert.Empty(t, seq.FireTimer(timer.Gen))
	_, armed = seq.PendingTimer()
	assert.False(t, armed)
	assert.False(t, seq.Snapshot().SessionActive)
	assert.Equal(t, 1, calls)

	assert.Empty(t, seq.FireTimer(timer.Gen))
	assert.Equal(t, 1, calls)
}

func TestManualNavigationCancelsTimer(t *testing.T) {
	seq, scheds := mounted(t, 3, time.Second)
	stale := only(t, scheds, ScheduleTimer)

	fresh := only(t, seq.Advance(), ScheduleTimer)
	assert.NotEqual(t, stale.Gen, fresh.Gen)

	assert.Empty(t, seq.FireTimer(stale.Gen))
	assert.Equal(t, 1, seq.Snapshot().CurrentIndex)

	seq.Finish()
	_, armed := seq.PendingTimer()
	assert.False(t, armed)
	assert.Empty(t, seq.FireTimer(fresh.Gen))
}

func TestAutoTransitionOverTwoStops(t *testing.T) {
	seq, scheds := mounted(t, 2, time.Second)
	calls := 0
	seq.setOnFinished(func() { calls++ })

	first := only(t, scheds, ScheduleTimer)
	second := only(t, seq.FireTimer(first.Gen), ScheduleTimer)
	assert.Equal(t, 1, seq.Snapshot().CurrentIndex)
	assert.Equal(t, time.Second, second.Delay)

	seq.FireTimer(second.Gen)
	assert.Equal(t, 1, calls)
	assert.False(t, seq.Snapshot().SessionActive)
}

func TestSetOnFinishedOnlyInManualMode(t *testing.T) {
	manual := NewSequence()
	assert.True(t, manual.SetOnFinished(func() {}))

	auto := NewSequence()
	auto.setAutoTransition(true, time.Second)
	kept := 0
	auto.setOnFinished(func() { kept++ })
	assert.False(t, auto.SetOnFinished(func() { t.Fatal("replaced callback ran") }))

	auto.Mount()
	auto.Finish()
	assert.Equal(t, 1, kept)
}

func TestShrinkingTotalLeavesIndexOutOfRange(t *testing.T) {
	seq, _ := mounted(t, 3, 0)
	seq.Advance()
	seq.Advance()

	seq.SetTotal(1)
	st := seq.Snapshot()
	assert.Equal(t, 2, st.CurrentIndex)
	assert.False(t, st.InRange())
}

func TestObserversSeeChanges(t *testing.T) {
	seq, _ := mounted(t, 3, 0)
	var seen []State
	cancel := seq.OnChange(func(s State) { seen = append(seen, s) })

	seq.Advance()
	require.NotEmpty(t, seen)
	assert.Equal(t, 1, seen[len(seen)-1].CurrentIndex)

	cancel()
	n := len(seen)
	seq.Advance()
	assert.Len(t, seen, n)
}
