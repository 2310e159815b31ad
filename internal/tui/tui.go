// Package tui is the interactive passphrase generator.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/randword/randword"
	"github.com/randword/randword/internal/passgen"
	"github.com/randword/randword/pkg/strength"
)

const (
	minWords = 1
	maxWords = 12
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	phraseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type Model struct {
	lang      randword.Lang
	wordCount int
	sep       string
	phrase    string
	showStats bool
	err       error
}

func New(lang randword.Lang, wordCount int, sep string) Model {
	if wordCount < minWords || wordCount > maxWords {
		wordCount = 4
	}
	m := Model{lang: lang, wordCount: wordCount, sep: sep}
	m.regenerate()
	return m
}

func (m *Model) regenerate() {
	m.phrase, m.err = passgen.Generate(m.lang, m.wordCount, m.sep)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", "enter", " ":
			m.regenerate()
		case "+", "=":
			if m.wordCount < maxWords {
				m.wordCount++
				m.regenerate()
			}
		case "-", "_":
			if m.wordCount > minWords {
				m.wordCount--
				m.regenerate()
			}
		case "s":
			m.showStats = !m.showStats
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("🎲 randword · %s", m.lang.Name())))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	b.WriteString(boxStyle.Render(phraseStyle.Render(m.phrase)))
	b.WriteString("\n")

	if m.showStats {
		rep := strength.Estimate(randword.Size(m.lang), m.wordCount)
		content := fmt.Sprintf(
			"%s %s\n%s %s\n%s %s\n%s %s",
			statLabelStyle.Render("Words:"),
			statValueStyle.Render(fmt.Sprintf("%d", rep.WordCount)),
			statLabelStyle.Render("Dictionary:"),
			statValueStyle.Render(fmt.Sprintf("%d", rep.DictionarySize)),
			statLabelStyle.Render("Entropy:"),
			statValueStyle.Render(fmt.Sprintf("%.2f bits", rep.EntropyBits)),
			statLabelStyle.Render("Rating:"),
			statValueStyle.Render(rep.Rating.String()),
		)
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(content))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		fmt.Sprintf("r regenerate · +/- words (%d) · s stats · q quit", m.wordCount)))
	return b.String()
}
