package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	t.Parallel()

	data := SummaryData{Name: "Mail tour", Total: 4, Visited: 2}
	summary := NewSummary(data)
	require.Equal(t, data, summary.data)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("renders nothing without stops", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", NewSummary(SummaryData{}).View())
	})

	t.Run("renders progress while running", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Total: 4, Visited: 1}).View()
		require.Contains(t, view, "Tour in progress: 1/4 stops seen")
	})

	t.Run("renders completion", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Name: "Mail tour", Total: 2, Visited: 2, Finished: true}).View()
		require.Contains(t, view, "Mail tour finished: 2/2 stops seen")
	})

	t.Run("renders skip", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Total: 3, Visited: 1, Finished: true, Skipped: true}).View()
		require.Contains(t, view, "Tour skipped after 1/3 stops")
	})

	t.Run("lists stops", func(t *testing.T) {
		t.Parallel()
		stops := NewStopList([]string{"Inbox", "Search"}, map[int]bool{0: true})
		view := NewSummary(SummaryData{Total: 2, Visited: 1, Finished: true, Stops: stops}).View()
		require.Contains(t, view, "✓ Inbox")
		require.Contains(t, view, "· Search")
	})
}
