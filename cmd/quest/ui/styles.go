// Package ui provides the visual styling for the AuraQuest terminal app.
// Teal on slate, with light/dark mode support.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#0f172a") // Slate 900
	LightPrimary    = lipgloss.Color("#0d9488") // Teal 600
	LightAccent     = lipgloss.Color("#6366f1") // Indigo 500
	LightMuted      = lipgloss.Color("#94a3b8") // Slate 400
	LightBorder     = lipgloss.Color("#e2e8f0") // Slate 200
	LightCard       = lipgloss.Color("#f8fafc") // Slate 50

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f1f5f9") // Slate 100
	DarkPrimary    = lipgloss.Color("#2dd4bf") // Teal 400
	DarkAccent     = lipgloss.Color("#818cf8") // Indigo 400
	DarkMuted      = lipgloss.Color("#64748b") // Slate 500
	DarkBorder     = lipgloss.Color("#334155") // Slate 700
	DarkCard       = lipgloss.Color("#1e293b") // Slate 800

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e11d48") // Rose 600
	Success     = lipgloss.Color("#14b8a6") // Teal 500
	Warning     = lipgloss.Color("#f59e0b") // Amber 500
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks dark or light from QUEST_DARK_MODE, falling back to the
// terminal background.
func DetectTheme() Theme {
	switch os.Getenv("QUEST_DARK_MODE") {
	case "1", "true":
		return DarkTheme()
	case "0", "false":
		return LightTheme()
	}
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Card    lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive
	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Key        lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Components
	Spinner lipgloss.Style
	Divider lipgloss.Style
	Badge   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Italic(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Unselected: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Key: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		ActiveTab: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Logo returns the AuraQuest wordmark
func Logo(s Styles) string {
	return s.Header.Render("✦ AURAQUEST AI")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", max(0, width)))
}

// Choice renders one option in a list. checked marks toggled options;
// focused marks the cursor row.
func (s Styles) Choice(label string, checked, focused bool) string {
	cursor := "  "
	if focused {
		cursor = s.Cursor.Render("▸ ")
	}
	box := "[ ] "
	style := s.Unselected
	if checked {
		box = "[x] "
		style = s.Selected
	}
	return cursor + style.Render(box+label)
}

// Radio renders one option of a single-choice list.
func (s Styles) Radio(label string, selected, focused bool) string {
	cursor := "  "
	if focused {
		cursor = s.Cursor.Render("▸ ")
	}
	if selected {
		return cursor + s.Selected.Render("(•) "+label)
	}
	return cursor + s.Unselected.Render("( ) "+label)
}

// KeyHelp renders "key action" pairs for the footer.
func (s Styles) KeyHelp(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, s.Key.Render(pairs[i])+" "+s.Muted.Render(pairs[i+1]))
	}
	return s.Footer.Render(strings.Join(parts, "  "))
}
