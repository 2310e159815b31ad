package randword

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// decodePayload decompresses an embedded word list and splits it into one
// word per line. The payload is produced at build time by tools/genwordlist
// and is never user-controlled, so any failure here is a build defect: the
// function panics rather than returning an error, and never yields a partial
// list.
func decodePayload(code string, payload []byte, want int) []string {
	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(payload)))
	if err != nil {
		panic(fmt.Sprintf("randword: corrupt embedded word list %q: %v", code, err))
	}

	words := strings.Split(string(raw), "\n")
	if len(words) != want {
		panic(fmt.Sprintf("randword: embedded word list %q decoded to %d words, expected %d",
			code, len(words), want))
	}
	for i, w := range words {
		if w == "" {
			panic(fmt.Sprintf("randword: embedded word list %q has an empty word at line %d", code, i+1))
		}
	}
	return words
}
