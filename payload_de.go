//go:build !lang_select || lang_de

package randword

import _ "embed"

// German word list, 7776 entries (see tools/genwordlist).

//go:embed data/de.br
var payloadDe []byte

func init() { registerLang(De, payloadDe, 7776) }
