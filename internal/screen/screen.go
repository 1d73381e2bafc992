package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabdrill/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is an optional interface for screens that hold resources, such
// as in-flight audio, that must be released when they leave the stack.
type Closer interface {
	Close()
}

// Capturer is an optional interface for screens that are consuming raw
// text input and want global shortcuts (like q) passed through to them.
type Capturer interface {
	CapturingInput() bool
}

// Dated is an optional interface for screens bound to a practice date,
// shown in the header.
type Dated interface {
	Date() string
}
