package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/randword/randword"
)

var (
	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	noResultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runSearch(query string) error {
	lang, err := randword.ParseLang(langCode)
	if err != nil {
		return err
	}

	matches := fuzzy.Find(query, randword.All(lang))
	if len(matches) == 0 {
		fmt.Println(noResultStyle.Render("no matches"))
		return nil
	}
	if len(matches) > searchLimit {
		matches = matches[:searchLimit]
	}

	for _, m := range matches {
		fmt.Println(highlightMatch(m))
	}
	return nil
}

// highlightMatch bolds the characters of the word that the query matched.
func highlightMatch(m fuzzy.Match) string {
	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}

	var b strings.Builder
	for i := 0; i < len(m.Str); i++ {
		c := string(m.Str[i])
		if matched[i] {
			b.WriteString(matchStyle.Render(c))
		} else {
			b.WriteString(c)
		}
	}
	return b.String()
}
