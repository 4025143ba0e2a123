package coachmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSourceDeliversPerType(t *testing.T) {
	src := NewEventSource()
	next, cancelNext := src.Subscribe(EventNext)
	defer cancelNext()
	skip, cancelSkip := src.Subscribe(EventSkip)
	defer cancelSkip()

	src.Trigger(EventNext)

	select {
	case <-next:
	default:
		t.Fatal("next subscriber did not receive the event")
	}
	select {
	case <-skip:
		t.Fatal("skip subscriber received a next event")
	default:
	}
}

func TestEventSourceTriggerNeverBlocks(t *testing.T) {
	src := NewEventSource()
	ch, cancel := src.Subscribe(EventBack)
	defer cancel()

	for i := 0; i < subscriberBuffer*3; i++ {
		src.Trigger(EventBack)
	}
	assert.Len(t, ch, subscriberBuffer)

	src.Trigger(EventDone)
}

func TestEventSourceCancelClosesChannel(t *testing.T) {
	src := NewEventSource()
	ch, cancel := src.Subscribe(EventDone)

	cancel()
	cancel()

	_, ok := <-ch
	require.False(t, ok)
	src.Trigger(EventDone)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "next", EventNext.String())
	assert.Equal(t, "back", EventBack.String())
	assert.Equal(t, "done", EventDone.String())
	assert.Equal(t, "skip", EventSkip.String())
	assert.Equal(t, "unknown", EventType(42).String())
}
