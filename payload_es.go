//go:build !lang_select || lang_es

package randword

import _ "embed"

// Spanish word list, 7776 entries (see tools/genwordlist).

//go:embed data/es.br
var payloadEs []byte

func init() { registerLang(Es, payloadEs, 7776) }
