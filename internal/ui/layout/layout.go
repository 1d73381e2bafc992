package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// ChromeHeight is the height taken by the header and footer boxes
	// together with the frame gaps around the content area.
	ChromeHeight = 8

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompact reports whether a screen given a content area of width x
// height should use its compact rendering.
func IsCompact(width, contentHeight int) bool {
	return width < CompactWidthThreshold || contentHeight+ChromeHeight < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the application header bar. date is the practice
// date shown on the right; it may be empty.
func RenderHeader(title, date string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Vocabdrill")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := ""
	if date != "" {
		right = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("📅 " + date)
	}

	inner := max(0, width-4)
	leftW, centerW, rightW := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	// Center the title on the bar, not on the gap between left and right.
	leftGap := max(1, (inner-centerW)/2-leftW)
	rightGap := max(1, inner-leftW-leftGap-centerW-rightW)

	return bar(width, left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right)
}

// RenderFooter renders the footer with key hints. Hints that do not fit
// are dropped from the middle so the last one (usually quit) stays visible.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
			" "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}

	const sep = "   "
	inner := max(0, width-6)
	for len(parts) > 1 && lipgloss.Width(strings.Join(parts, sep)) > inner {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}

	return bar(width, "  "+strings.Join(parts, sep))
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
