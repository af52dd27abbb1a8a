package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for an intake request status.
func StatusPill(s domain.RequestStatus) string {
	switch s {
	case domain.StatusNew:
		return StyleBlue.Render("● New")
	case domain.StatusUnderReview:
		return StyleYellow.Render("◐ Under review")
	case domain.StatusAccepted:
		return StyleGreen.Render("✔ Accepted")
	case domain.StatusDeferred:
		return StyleDim.Render("○ Deferred")
	case domain.StatusRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleDim.Render(string(s))
	}
}

// UrgencyBadge colors the urgency label by severity.
func UrgencyBadge(u domain.Urgency) string {
	label := strings.ToUpper(string(u))
	switch u {
	case domain.UrgencyCritical:
		return StyleRed.Bold(true).Render("▲ " + label)
	case domain.UrgencyHigh:
		return StyleRed.Render(label)
	case domain.UrgencyMedium:
		return StyleYellow.Render(label)
	case domain.UrgencyLow:
		return StyleGreen.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// ImpactBadge returns a capitalized, purple-styled impact area label.
func ImpactBadge(a domain.ImpactArea) string {
	if a == "" {
		return StyleDim.Render("--")
	}
	s := string(a)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// ColumnLabel returns the board column title used in headers and badges.
func ColumnLabel(c domain.Column) string {
	switch c {
	case domain.ColumnBacklog:
		return "Backlog"
	case domain.ColumnInProgress:
		return "In Progress"
	case domain.ColumnInReview:
		return "In Review"
	case domain.ColumnDone:
		return "Done"
	default:
		return string(c)
	}
}

// ColumnPill returns a colored indicator for a ticket's board column.
func ColumnPill(c domain.Column) string {
	label := ColumnLabel(c)
	switch c {
	case domain.ColumnBacklog:
		return StyleDim.Render("○ " + label)
	case domain.ColumnInProgress:
		return StyleBlue.Render("● " + label)
	case domain.ColumnInReview:
		return StyleYellow.Render("◐ " + label)
	case domain.ColumnDone:
		return StyleGreen.Render("✔ " + label)
	default:
		return StyleDim.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
