package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	p := NewProgress(4)
	require.Equal(t, 4, p.total)
	require.Equal(t, 20, p.bar.Width)
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		total int
		index int
		label string
	}{
		{"first stop", 4, 0, "Tour 1/4"},
		{"middle stop", 4, 2, "Tour 3/4"},
		{"last stop", 4, 3, "Tour 4/4"},
		{"index beyond total caps", 4, 9, "Tour 4/4"},
		{"empty tour", 0, 0, "Tour 0/0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			view := ansi.Strip(NewProgress(tc.total).View(tc.index))
			require.Contains(t, view, tc.label)
			require.Greater(t, ansi.StringWidth(view), len(tc.label), "expected the bar next to the label")
		})
	}
}
