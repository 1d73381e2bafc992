package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/ui/theme"
)

// ProgressBar shows the position within a practice session as
// "current / total" followed by a bar.
type ProgressBar struct {
	Current int // 1-based
	Total   int
	Width   int
}

// NewProgressBar creates a progress bar for position current of total.
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// Percent is the completed fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return max(0, min(1, float64(p.Current)/float64(p.Total)))
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d / %d", p.Current, p.Total)) + "  "

	barWidth := max(4, p.Width-lipgloss.Width(label))
	filled := int(float64(barWidth) * p.Percent())

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
