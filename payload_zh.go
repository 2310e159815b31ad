//go:build !lang_select || lang_zh

package randword

import _ "embed"

// Chinese word list, 7776 entries (see tools/genwordlist).

//go:embed data/zh.br
var payloadZh []byte

func init() { registerLang(Zh, payloadZh, 7776) }
