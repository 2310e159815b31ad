//go:build !lang_select || lang_ru

package randword

import _ "embed"

// Russian word list, 7776 entries (see tools/genwordlist).

//go:embed data/ru.br
var payloadRu []byte

func init() { registerLang(Ru, payloadRu, 7776) }
