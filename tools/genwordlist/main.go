// Command genwordlist turns a plaintext word list (one word per line) into
// the brotli payload embedded by the library. It prints the word count that
// must be passed to registerLang for the language.
//
//	go run ./tools/genwordlist -in wordlists/en.txt -out data/en.br
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
)

func main() {
	in := flag.String("in", "", "plaintext word list, one word per line")
	out := flag.String("out", "", "output payload path")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	seen := make(map[string]bool)
	var words []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		if !utf8.ValidString(w) {
			return fmt.Errorf("invalid UTF-8 word %q", w)
		}
		if seen[w] {
			return fmt.Errorf("duplicate word %q", w)
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("%s contains no words", in)
	}
	sort.Strings(words)

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	bw := brotli.NewWriterLevel(dst, brotli.BestCompression)
	if _, err := bw.Write([]byte(strings.Join(words, "\n"))); err != nil {
		return err
	}
	if err := bw.Close(); err != nil {
		return err
	}

	fmt.Printf("%s: %d words\n", out, len(words))
	return nil
}
