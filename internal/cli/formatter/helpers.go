package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RelativeTime renders t relative to now, e.g. "3 hours ago".
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom renders t relative to a reference time.
func RelativeTimeFrom(t, now time.Time) string {
	if now.Sub(t) < time.Minute && !t.After(now) {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Timestamp pairs the absolute UTC time with a dimmed relative hint.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s %s", t.UTC().Format("Jan 2, 2006 15:04"), Dim("("+RelativeTime(t)+")"))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Optional renders a pointer value or a dimmed placeholder.
func Optional(s *string) string {
	if s == nil || *s == "" {
		return Dim("--")
	}
	return *s
}

// Progress renders "done/total" with a short bar, green once complete.
func Progress(done, total int) string {
	if total == 0 {
		return Dim("--")
	}
	const width = 10
	filled := done * width / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf("%s %d/%d", bar, done, total)
	if done == total {
		return StyleGreen.Render(label)
	}
	return StyleFg.Render(label)
}
