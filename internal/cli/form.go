package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// intakeHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func intakeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func enumOptions[T ~string](values []T) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(string(v), string(v)))
	}
	return opts
}

// requestForm collects a new intake request interactively. Values already
// set on in are used as defaults.
func requestForm(in *domain.NewRequest) *huh.Form {
	if in.ImpactArea == "" {
		in.ImpactArea = string(domain.ImpactProduct)
	}
	if in.Urgency == "" {
		in.Urgency = string(domain.UrgencyMedium)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What do you need?").
				Value(&in.Title).
				Validate(notBlank("title")),
			huh.NewText().
				Title("Business context").
				Description("Why it matters and who benefits").
				Value(&in.BusinessContext).
				Validate(notBlank("business context")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Impact area").
				Options(enumOptions(domain.ImpactAreas)...).
				Value(&in.ImpactArea),
			huh.NewSelect[string]().
				Title("Urgency").
				Options(enumOptions(domain.Urgencies)...).
				Value(&in.Urgency),
			huh.NewInput().
				Title("Your name").
				Value(&in.RequesterName).
				Validate(notBlank("requester name")),
		),
	).WithTheme(intakeHuhTheme())
}
