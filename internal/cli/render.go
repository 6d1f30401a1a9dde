package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Sticker colors keyed by face letter in a standard color scheme.
var faceColors = map[byte]lipgloss.Color{
	'U': lipgloss.Color("#FFFFFF"),
	'R': lipgloss.Color("#D50000"),
	'F': lipgloss.Color("#00C853"),
	'D': lipgloss.Color("#FFD600"),
	'L': lipgloss.Color("#FF6D00"),
	'B': lipgloss.Color("#2962FF"),
}

func sticker(b byte, color bool) string {
	s := " " + string(b) + " "
	c, ok := faceColors[b]
	if !color || !ok {
		return s
	}
	return lipgloss.NewStyle().
		Background(c).
		Foreground(lipgloss.Color("#000000")).
		Render(s)
}

// renderNet draws a facelet string as an unfolded cube:
//
//	   U
//	L  F  R  B
//	   D
func renderNet(facelets string, color bool) string {
	row := func(face, r int) string {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			b.WriteString(sticker(facelets[9*face+3*r+c], color))
		}
		return b.String()
	}
	pad := strings.Repeat(" ", 9)

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(0, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(row(4, r) + row(2, r) + row(1, r) + row(5, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(3, r) + "\n")
	}
	return b.String()
}

// renderMoves joins moves, highlighting the one at current. A negative
// current highlights nothing.
func renderMoves(moves []string, current int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		switch {
		case i == current:
			parts[i] = currentMoveStyle.Render(m)
		case i < current:
			parts[i] = statusStyle.Render(m)
		default:
			parts[i] = moveStyle.Render(m)
		}
	}
	return strings.Join(parts, " ")
}
