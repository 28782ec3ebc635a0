package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/parcelscout/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// parcelHuhTheme returns the huh theme matching the formatter palette.
func parcelHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// addressInput returns a huh.Input that rejects blank addresses. The value
// is kept exactly as typed because lookups match character for character.
func addressInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Property Address").
		Placeholder(formatter.SearchPlaceholder).
		Value(value).
		Validate(validateAddress)
}

// addressForm returns a themed single-field Form for collecting an address.
func addressForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(addressInput(value)),
	).WithTheme(parcelHuhTheme()).WithShowHelp(false)
}

var errBlankAddress = errors.New("address is required")

func validateAddress(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlankAddress
	}
	return nil
}
