//go:build !lang_select || lang_ja

package randword

import _ "embed"

// Japanese word list, 7776 entries (see tools/genwordlist).

//go:embed data/ja.br
var payloadJa []byte

func init() { registerLang(Ja, payloadJa, 7776) }
