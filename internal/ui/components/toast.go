package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/ui/theme"
)

// Toast is a transient one-line notification. The owning screen decides
// when it expires.
type Toast struct {
	Message string
}

// Visible reports whether there is anything to show.
func (t Toast) Visible() bool {
	return t.Message != ""
}

// View renders the toast centered in width, or "" when hidden.
func (t Toast) View(width int) string {
	if !t.Visible() {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Toast.Render("✗ "+t.Message))
}
