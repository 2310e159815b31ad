//go:build !lang_select || lang_fr

package randword

import _ "embed"

// French word list, 7776 entries (see tools/genwordlist).

//go:embed data/fr.br
var payloadFr []byte

func init() { registerLang(Fr, payloadFr, 7776) }
