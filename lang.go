package randword

import (
	"fmt"
	"sort"
	"sync"
)

// Lang is an ISO 639-1 language code identifying one embedded word list.
//
// Every language is compiled in by default. To shrink the binary, build with
// the lang_select tag plus one tag per wanted language, e.g.
//
//	go build -tags lang_select,lang_en,lang_de
//
// Referencing a language that was excluded from the build is a configuration
// error and panics on first use.
type Lang int

const (
	De Lang = iota // German
	En             // English
	Es             // Spanish
	Fr             // French
	Ja             // Japanese
	Ru             // Russian
	Zh             // Chinese

	langCount
)

var langCodes = [langCount]string{
	De: "de",
	En: "en",
	Es: "es",
	Fr: "fr",
	Ja: "ja",
	Ru: "ru",
	Zh: "zh",
}

var langNames = [langCount]string{
	De: "German",
	En: "English",
	Es: "Spanish",
	Fr: "French",
	Ja: "Japanese",
	Ru: "Russian",
	Zh: "Chinese",
}

// Code returns the ISO 639-1 code, e.g. "en".
func (l Lang) Code() string {
	if l < 0 || l >= langCount {
		return fmt.Sprintf("Lang(%d)", int(l))
	}
	return langCodes[l]
}

// Name returns the English name of the language, e.g. "English".
func (l Lang) Name() string {
	if l < 0 || l >= langCount {
		return fmt.Sprintf("Lang(%d)", int(l))
	}
	return langNames[l]
}

func (l Lang) String() string { return l.Code() }

// ParseLang resolves an ISO 639-1 code to a Lang. It only matches languages
// compiled into this binary.
func ParseLang(code string) (Lang, error) {
	for l, c := range langCodes {
		if c == code {
			if registry[l] == nil {
				return 0, fmt.Errorf("language %q not compiled in (missing lang_%s build tag)", code, code)
			}
			return Lang(l), nil
		}
	}
	return 0, fmt.Errorf("unknown language code %q", code)
}

// Langs returns the languages compiled into this binary, in a stable order.
func Langs() []Lang {
	var ls []Lang
	for l, e := range registry {
		if e != nil {
			ls = append(ls, Lang(l))
		}
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

// langEntry holds one language's compressed payload and its decode-once cell.
type langEntry struct {
	payload []byte
	count   int

	once sync.Once
	dict *dictionary
}

var registry [langCount]*langEntry

// registerLang is called from the per-language payload files' init functions.
func registerLang(l Lang, payload []byte, count int) {
	if registry[l] != nil {
		panic("randword: duplicate registration for language " + l.Code())
	}
	registry[l] = &langEntry{payload: payload, count: count}
}

// dict returns the decoded, indexed dictionary for l, building it on first
// use. Construction runs exactly once per language; concurrent first callers
// block until the single build completes, and languages never block each
// other. After that this is a plain pointer read.
func dict(l Lang) *dictionary {
	if l < 0 || l >= langCount {
		panic(fmt.Sprintf("randword: invalid language %d", int(l)))
	}
	e := registry[l]
	if e == nil {
		panic(fmt.Sprintf("randword: language %q not compiled in (build with -tags lang_select,lang_%s or drop lang_select)",
			l.Code(), l.Code()))
	}
	e.once.Do(func() {
		e.dict = newDictionary(decodePayload(l.Code(), e.payload, e.count))
	})
	return e.dict
}
