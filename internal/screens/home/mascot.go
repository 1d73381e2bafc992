package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotToday   MascotVariant = iota // Open book, today's words
	MascotPast                         // Closed book, an earlier date
	MascotFuture                       // Book with a bookmark, a date not reached yet
)

const mascotToday = ` ______ ______
/ a b  Y  c d \
| e f  |  g h |
\______|______/`

const mascotPast = ` _______
|▐ A-Z  |
|▐      |
|▐______|`

const mascotFuture = ` _______
|▐ A-Z ▼|
|▐      |
|▐______|`

// mascotFor picks the variant for date relative to today. Both are
// YYYY-MM-DD so they compare lexically.
func mascotFor(date, today string) MascotVariant {
	switch {
	case date < today:
		return MascotPast
	case date > today:
		return MascotFuture
	default:
		return MascotToday
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotToday, theme.Primary
	switch v {
	case MascotPast:
		art, fg = mascotPast, theme.TextDim
	case MascotFuture:
		art, fg = mascotFuture, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
