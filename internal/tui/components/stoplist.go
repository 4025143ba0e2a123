package components

import (
	"fmt"
	"strings"
)

// StopEntry is one tour stop as listed in the summary.
type StopEntry struct {
	Title   string
	Visited bool
}

// StopList renders the stops of a tour with the ones the user saw ticked.
type StopList struct {
	entries []StopEntry
}

// NewStopList builds a list from titles in tour order; visited is keyed by
// the stop's index.
func NewStopList(titles []string, visited map[int]bool) StopList {
	entries := make([]StopEntry, 0, len(titles))
	for i, title := range titles {
		entries = append(entries, StopEntry{Title: title, Visited: visited[i]})
	}
	return StopList{entries: entries}
}

// Entries returns the ordered stop entries.
func (s StopList) Entries() []StopEntry {
	clone := make([]StopEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}

// Visited counts the stops the user saw.
func (s StopList) Visited() int {
	n := 0
	for _, e := range s.entries {
		if e.Visited {
			n++
		}
	}
	return n
}

// View renders one line per stop.
func (s StopList) View() string {
	lines := make([]string, 0, len(s.entries))
	for i, e := range s.entries {
		mark := "·"
		if e.Visited {
			mark = "✓"
		}
		title := e.Title
		if strings.TrimSpace(title) == "" {
			title = fmt.Sprintf("stop %d", i+1)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", mark, title))
	}
	return strings.Join(lines, "\n")
}
