//go:build !lang_select || lang_en

package randword

import _ "embed"

// English word list, 7776 entries (see tools/genwordlist).

//go:embed data/en.br
var payloadEn []byte

func init() { registerLang(En, payloadEn, 7776) }
