package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the look of an actionable control.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonDestructive
	ButtonOutline
	ButtonGhost
	ButtonLink
)

// ButtonSize selects a control's padding.
type ButtonSize int

const (
	SizeDefault ButtonSize = iota
	SizeSmall
	SizeIcon
)

// AlertVariant selects the look of a status panel.
type AlertVariant int

const (
	AlertDefault AlertVariant = iota
	AlertDestructive
)

var (
	buttonBase = lipgloss.NewStyle().Bold(true)

	buttonStyles = map[ButtonVariant]lipgloss.Style{
		ButtonDefault:     buttonBase.Foreground(ColorBg).Background(ColorPurple),
		ButtonDestructive: buttonBase.Foreground(ColorBg).Background(ColorRed),
		ButtonOutline:     lipgloss.NewStyle().Foreground(ColorFg),
		ButtonGhost:       lipgloss.NewStyle().Foreground(ColorDim),
		ButtonLink:        lipgloss.NewStyle().Foreground(ColorBlue).Underline(true),
	}

	buttonDisabled = lipgloss.NewStyle().Foreground(ColorDim).Faint(true)
)

// Button renders a single-line control. Outline buttons are bracketed so
// they stay recognisable without color.
func Button(label string, variant ButtonVariant, size ButtonSize, disabled bool) string {
	style, ok := buttonStyles[variant]
	if !ok {
		style = buttonStyles[ButtonDefault]
	}
	if disabled {
		style = buttonDisabled
	}

	if variant != ButtonLink {
		switch size {
		case SizeSmall:
			style = style.Padding(0, 1)
		case SizeIcon:
			style = style.Padding(0, 0)
		default:
			style = style.Padding(0, 2)
		}
	}

	if variant == ButtonOutline {
		return Dim("[") + style.Render(label) + Dim("]")
	}
	return style.Render(label)
}

// ButtonRow joins controls on one line separated by a gap.
func ButtonRow(buttons ...string) string {
	return strings.Join(buttons, "  ")
}

// Card renders a titled rounded container. actions render right of the title.
func Card(title, body string, width int, actions ...string) string {
	head := ""
	if title != "" {
		head = StyleHeader.Render(title)
		if len(actions) > 0 {
			row := ButtonRow(actions...)
			gap := 2
			if iw := innerWidth(width); iw > 0 {
				gap = max(iw-lipgloss.Width(head)-lipgloss.Width(row), 2)
			}
			head += strings.Repeat(" ", gap) + row
		}
	}
	return RenderBox(head, body, width)
}

// Alert renders a status panel. Destructive alerts use a red border.
func Alert(message string, variant AlertVariant, width int) string {
	border := ColorBlue
	text := StyleBlue
	if variant == AlertDestructive {
		border = ColorRed
		text = StyleRed
	}
	return renderBoxStyled("", text.Render(wrapText(message, innerWidth(width))), width, border)
}
