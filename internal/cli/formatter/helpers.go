package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// boxChrome is the horizontal space a RenderBox border and padding take.
const boxChrome = 6

// RenderBox wraps content in a rounded-border box with an optional title.
// width is the outer width; zero lets the box size to its content.
func RenderBox(title string, content string, width int) string {
	return renderBoxStyled(title, content, width, ColorDim)
}

func renderBoxStyled(title, content string, width int, border lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2)

	if width > boxChrome {
		boxStyle = boxStyle.Width(width - 2)
	}

	if title != "" {
		return boxStyle.Render(title + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// innerWidth is the text width available inside a box of the given outer
// width, or zero (no wrapping) when the width is unknown.
func innerWidth(width int) int {
	if width <= boxChrome {
		return 0
	}
	return width - boxChrome
}

// wrapText word-wraps text to width. Runs of spaces inside a line are kept
// so user-typed text renders verbatim. width <= 0 disables wrapping.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		words := strings.Split(line, " ")
		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current)+1+lipgloss.Width(word) <= width {
				current += " " + word
				continue
			}
			out = append(out, current)
			current = word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}

// hangingIndent wraps text and prefixes the first line with lead and every
// following line with spaces of the same width.
func hangingIndent(lead, text string, width int) string {
	leadWidth := lipgloss.Width(lead)
	avail := 0
	if width > 0 {
		avail = max(width-leadWidth, 10)
	}
	pad := strings.Repeat(" ", leadWidth)
	lines := strings.Split(wrapText(text, avail), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = lead + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
