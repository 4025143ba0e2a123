package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStopList(t *testing.T) {
	t.Parallel()

	t.Run("creates empty list", func(t *testing.T) {
		t.Parallel()
		sl := NewStopList(nil, nil)
		require.Empty(t, sl.Entries())
		require.Equal(t, "", sl.View())
	})

	t.Run("keeps tour order and visited flags", func(t *testing.T) {
		t.Parallel()
		sl := NewStopList([]string{"Compose", "Inbox", "Search"}, map[int]bool{0: true, 2: true})

		entries := sl.Entries()
		require.Len(t, entries, 3)
		require.Equal(t, StopEntry{Title: "Compose", Visited: true}, entries[0])
		require.Equal(t, StopEntry{Title: "Inbox", Visited: false}, entries[1])
		require.Equal(t, 2, sl.Visited())
	})

	t.Run("entries are copies", func(t *testing.T) {
		t.Parallel()
		sl := NewStopList([]string{"a"}, nil)
		entries := sl.Entries()
		entries[0].Title = "changed"
		require.Equal(t, "a", sl.Entries()[0].Title)
	})
}

func TestStopListView(t *testing.T) {
	t.Parallel()

	view := NewStopList([]string{"Compose", ""}, map[int]bool{0: true}).View()
	require.Contains(t, view, "✓ Compose")
	require.Contains(t, view, "· stop 2")
}
