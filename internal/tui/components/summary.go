package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates what happened during a tour.
type SummaryData struct {
	Name     string
	Total    int
	Visited  int
	Finished bool
	Skipped  bool
	Stops    StopList
}

// Summary renders a textual tour summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Total == 0 {
		return ""
	}

	var lines []string
	name := s.data.Name
	if name == "" {
		name = "Tour"
	}

	switch {
	case s.data.Skipped:
		lines = append(lines, fmt.Sprintf("%s skipped after %d/%d stops", name, s.data.Visited, s.data.Total))
	case s.data.Finished:
		lines = append(lines, fmt.Sprintf("%s finished: %d/%d stops seen", name, s.data.Visited, s.data.Total))
	default:
		lines = append(lines, fmt.Sprintf("%s in progress: %d/%d stops seen", name, s.data.Visited, s.data.Total))
	}

	if stops := s.data.Stops.View(); stops != "" {
		lines = append(lines, stops)
	}

	return strings.Join(lines, "\n")
}
