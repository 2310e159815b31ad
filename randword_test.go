package randword

import (
	"testing"
	"unicode/utf8"
)

func TestLangsNotEmpty(t *testing.T) {
	langs := Langs()
	if len(langs) == 0 {
		t.Fatal("no languages compiled in")
	}
	for _, l := range langs {
		if l.Code() == "" || l.Name() == "" {
			t.Errorf("language %d has empty code or name", int(l))
		}
	}
}

func TestAllSizeAndStability(t *testing.T) {
	for _, l := range Langs() {
		l := l
		t.Run(l.Code(), func(t *testing.T) {
			words := All(l)
			if len(words) != 7776 {
				t.Errorf("All(%s) has %d words, want 7776", l, len(words))
			}
			if len(words) != Size(l) {
				t.Errorf("Size(%s) = %d, want %d", l, Size(l), len(words))
			}

			again := All(l)
			if len(again) != len(words) {
				t.Fatalf("second All(%s) has %d words, want %d", l, len(again), len(words))
			}
			for i := range words {
				if words[i] != again[i] {
					t.Fatalf("All(%s) order changed at index %d: %q vs %q", l, i, words[i], again[i])
				}
			}
		})
	}
}

func TestAllWordsValid(t *testing.T) {
	for _, l := range Langs() {
		seen := make(map[string]bool, Size(l))
		for _, w := range All(l) {
			if w == "" {
				t.Fatalf("%s: empty word", l)
			}
			if !utf8.ValidString(w) {
				t.Fatalf("%s: invalid UTF-8 word %q", l, w)
			}
			if seen[w] {
				t.Errorf("%s: duplicate word %q", l, w)
			}
			seen[w] = true
		}
	}
}

func TestGetReturnsDictionaryWord(t *testing.T) {
	for _, l := range Langs() {
		inDict := make(map[string]bool, Size(l))
		for _, w := range All(l) {
			inDict[w] = true
		}

		unique := make(map[string]bool)
		for i := 0; i < 100; i++ {
			w := Get(l)
			if !inDict[w] {
				t.Fatalf("Get(%s) returned %q, not in dictionary", l, w)
			}
			unique[w] = true
		}
		// 100 draws from 7776 words repeating a single word is not
		// plausible for a uniform source.
		if len(unique) < 2 {
			t.Errorf("Get(%s) returned the same word 100 times", l)
		}
	}
}

func TestAllLenMembership(t *testing.T) {
	for _, l := range Langs() {
		for _, w := range All(l) {
			n := utf8.RuneCountInString(w)
			found := false
			for _, got := range AllLen(n, l) {
				if got == w {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%s: word %q missing from AllLen(%d)", l, w, n)
			}
		}
	}
}

func TestAllLenPartition(t *testing.T) {
	for _, l := range Langs() {
		total := 0
		union := make(map[string]bool)
		for _, n := range Lengths(l) {
			bucket := AllLen(n, l)
			total += len(bucket)
			for _, w := range bucket {
				if utf8.RuneCountInString(w) != n {
					t.Errorf("%s: AllLen(%d) contains %q (%d runes)", l, n, w, utf8.RuneCountInString(w))
				}
				if union[w] {
					t.Errorf("%s: word %q appears in two length buckets", l, w)
				}
				union[w] = true
			}
		}
		if total != Size(l) {
			t.Errorf("%s: length buckets hold %d words, dictionary has %d", l, total, Size(l))
		}
	}
}

func TestAllLenBoundaries(t *testing.T) {
	for _, l := range Langs() {
		if got := AllLen(0, l); len(got) != 0 {
			t.Errorf("AllLen(0, %s) returned %d words", l, len(got))
		}
		if got := AllLen(1<<20, l); len(got) != 0 {
			t.Errorf("AllLen(huge, %s) returned %d words", l, len(got))
		}
		if _, ok := GetLen(1<<20, l); ok {
			t.Errorf("GetLen(huge, %s) reported a match", l)
		}
	}
}

func TestGetLen(t *testing.T) {
	for _, l := range Langs() {
		// Use a length that definitely occurs.
		n := utf8.RuneCountInString(All(l)[0])
		w, ok := GetLen(n, l)
		if !ok {
			t.Fatalf("GetLen(%d, %s) found nothing", n, l)
		}
		if utf8.RuneCountInString(w) != n {
			t.Errorf("GetLen(%d, %s) = %q (%d runes)", n, l, w, utf8.RuneCountInString(w))
		}
	}
}

func TestStartsWithIffPresent(t *testing.T) {
	for _, l := range Langs() {
		present := make(map[rune]bool)
		for _, w := range All(l) {
			r, _ := utf8.DecodeRuneInString(w)
			present[firstKey(r)] = true
		}

		for r := range present {
			words := AllStartsWith(r, l)
			if len(words) == 0 {
				t.Errorf("%s: AllStartsWith(%q) empty but words with that initial exist", l, r)
			}
			for _, w := range words {
				first, _ := utf8.DecodeRuneInString(w)
				if firstKey(first) != r {
					t.Errorf("%s: AllStartsWith(%q) contains %q", l, r, w)
				}
			}
			if _, ok := GetStartsWith(r, l); !ok {
				t.Errorf("%s: GetStartsWith(%q) found nothing", l, r)
			}
		}

		// A rune no word list uses.
		if got := AllStartsWith('☃', l); len(got) != 0 {
			t.Errorf("%s: AllStartsWith(snowman) returned %d words", l, len(got))
		}
		if _, ok := GetStartsWith('☃', l); ok {
			t.Errorf("%s: GetStartsWith(snowman) reported a match", l)
		}
	}
}

func TestStartsWithFoldsCase(t *testing.T) {
	lower := AllStartsWith('a', En)
	upper := AllStartsWith('A', En)
	if len(lower) == 0 {
		t.Fatal("no English words starting with 'a'")
	}
	if len(upper) != len(lower) {
		t.Errorf("AllStartsWith('A') = %d words, AllStartsWith('a') = %d", len(upper), len(lower))
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		code    string
		want    Lang
		wantErr bool
	}{
		{"en", En, false},
		{"de", De, false},
		{"zh", Zh, false},
		{"xx", 0, true},
		{"", 0, true},
		{"EN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseLang(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLang(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLang(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestLangCodeAndName(t *testing.T) {
	if En.Code() != "en" || En.Name() != "English" {
		t.Errorf("En = %s/%s", En.Code(), En.Name())
	}
	if Lang(99).Code() != "Lang(99)" {
		t.Errorf("out-of-range Code() = %q", Lang(99).Code())
	}
}
