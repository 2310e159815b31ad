package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/randword/randword/pkg/strength"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	reportValueStyle = lipgloss.NewStyle().
				Bold(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ratingColors assigns each rating the ANSI palette color used in both the
// report value and the reference legend.
var ratingColors = map[strength.Rating]lipgloss.Color{
	strength.VeryWeak:        lipgloss.Color("196"), // red
	strength.Weak:            lipgloss.Color("226"), // yellow
	strength.Reasonable:      lipgloss.Color("33"),  // blue
	strength.Strong:          lipgloss.Color("46"),  // green
	strength.VeryStrong:      lipgloss.Color("51"),  // cyan
	strength.ExtremelyStrong: lipgloss.Color("201"), // magenta
}

func renderReport(rep strength.Report, phraseLen int) string {
	ratingStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ratingColors[rep.Rating])

	row := func(label, value string) string {
		return fmt.Sprintf("%s %s",
			reportLabelStyle.Render(fmt.Sprintf("%-18s", label)),
			reportValueStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString(reportTitleStyle.Render("Passphrase Strength Analysis"))
	b.WriteString("\n")

	content := strings.Join([]string{
		row("Words used:", fmt.Sprintf("%d", rep.WordCount)),
		row("Dictionary size:", fmt.Sprintf("%d words", rep.DictionarySize)),
		row("Phrase length:", fmt.Sprintf("%d characters", phraseLen)),
		row("Possible combos:", rep.CombinationsDisplay()),
		row("Entropy:", ratingStyle.Render(fmt.Sprintf("%.2f bits", rep.EntropyBits))),
		row("Strength rating:", ratingStyle.Render(rep.Rating.String())),
	}, "\n")
	b.WriteString(reportBoxStyle.Render(content))
	b.WriteString("\n\n")

	b.WriteString(legendStyle.Render("For reference:"))
	b.WriteString("\n")
	legend := []struct {
		span   string
		rating strength.Rating
		note   string
	}{
		{"<28 bits:", strength.VeryWeak, "crackable instantly"},
		{"28-36 bits:", strength.Weak, "crackable in hours/days"},
		{"36-60 bits:", strength.Reasonable, "crackable in months/years"},
		{"60-80 bits:", strength.Strong, "secure for most purposes"},
		{"80-128 bits:", strength.VeryStrong, "military grade"},
		{">128 bits:", strength.ExtremelyStrong, "overkill"},
	}
	for _, e := range legend {
		name := lipgloss.NewStyle().Foreground(ratingColors[e.rating]).Render(e.rating.String())
		b.WriteString(legendStyle.Render(fmt.Sprintf("  • %-12s ", e.span)))
		b.WriteString(name)
		b.WriteString(legendStyle.Render(" (" + e.note + ")"))
		b.WriteString("\n")
	}
	return b.String()
}
