package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how far through the tour the user is.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for a tour of total stops.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return Progress{bar: bar, total: total}
}

// View renders the bar with the zero-based index of the current stop.
func (p Progress) View(index int) string {
	stop := min(index+1, p.total)
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(stop)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Tour %d/%d", stop, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
