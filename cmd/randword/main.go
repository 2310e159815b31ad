package main

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/randword/randword"
	"github.com/randword/randword/internal/passgen"
	"github.com/randword/randword/internal/tui"
	"github.com/randword/randword/pkg/strength"
)

var (
	showStats bool
	langCode  string

	// Flags for search command
	searchLimit int
)

var rootCmd = &cobra.Command{
	Use:   "randword [count] [separator]",
	Short: "Generate random-word passphrases",
	Long: `Generate passphrases from word lists embedded in the binary.

Examples:
  randword              # 4 words joined with hyphens
  randword 5 _          # 5 words joined with underscores
  randword -s 6         # 6 words plus a strength report
  randword -l de        # German words`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0])
	},
}

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List languages compiled into this binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLangs()
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Generate passphrases interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&langCode, "lang", "l", "en", "ISO 639-1 language code")
	rootCmd.Flags().BoolVarP(&showStats, "stats", "s", false, "Print a strength report to stderr")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 15, "Maximum number of results")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(langsCmd)
	rootCmd.AddCommand(interactiveCmd)
}

func main() {
	// Misconfigured build: the lang_select tag was set without any lang_*
	// language tags. Nothing can work, so fail before cobra runs.
	if len(randword.Langs()) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no languages compiled into this binary (check lang_* build tags)")
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// parseCount interprets the optional positional word count. Anything that is
// not a positive integer is a user error.
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid word count %q: must be a number", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid word count %d: must be at least 1", n)
	}
	return n, nil
}

func runGenerate(args []string) error {
	count := 4
	if len(args) > 0 {
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}
		count = n
	}

	sep := "-"
	if len(args) > 1 {
		sep = args[1]
	}

	lang, err := randword.ParseLang(langCode)
	if err != nil {
		return err
	}

	phrase, err := passgen.Generate(lang, count, sep)
	if err != nil {
		return err
	}
	fmt.Println(phrase)

	if showStats {
		rep := strength.Estimate(randword.Size(lang), count)
		fmt.Fprintln(os.Stderr, renderReport(rep, utf8.RuneCountInString(phrase)))
	}
	return nil
}

func runLangs() error {
	for _, l := range randword.Langs() {
		fmt.Printf("%s  %-10s %d words\n", l.Code(), l.Name(), randword.Size(l))
	}
	return nil
}

func runInteractive() error {
	lang, err := randword.ParseLang(langCode)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(lang, 4, "-"), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
