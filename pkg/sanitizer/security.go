package sanitizer

import (
	"fmt"
	"strings"
)

// htmlEscapes lists replacements in application order. The ampersand must go
// first, otherwise the entities produced by later steps would be escaped again.
var htmlEscapes = [...]struct{ from, to string }{
	{"&", "&amp;"},
	{`"`, "&quot;"},
	{"<", "&lt;"},
	{">", "&gt;"},
}

// Escape returns the textual form of v with &, ", < and > replaced by their
// HTML entities, so the result can be placed in element content or in a
// double-quoted attribute value. Any value is accepted: non-strings are
// formatted with fmt.Sprint first, and nil becomes "<nil>" escaped.
func Escape(v any) string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	default:
		s = fmt.Sprint(v)
	}
	if !strings.ContainsAny(s, `&"<>`) {
		return s
	}
	for _, e := range htmlEscapes {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}
