package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnquoteString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`'PLAIN'`, "PLAIN"},
		{`"DOUBLE"`, "DOUBLE"},
		{`''`, ""},
		{`'a\nb'`, "a\nb"},
		{`'a\tb\rc\bd\fe\vf'`, "a\tb\rc\bd\fe\vf"},
		{`'\'quoted\''`, "'quoted'"},
		{`"\"quoted\""`, `"quoted"`},
		{`'back\\slash'`, `back\slash`},
		{`'\x41\x42'`, "AB"},
		{`'\u0041'`, "A"},
		{`'\u{1F600}'`, "\U0001F600"},
		{`'😀'`, "\U0001F600"},
		{`'\uD83D'`, "\uFFFD"},
		{`'\uD83D\uDE00'`, "\U0001F600"},
		{`'\0'`, "\x00"},
		{`'\101'`, "A"},
		{`'\q'`, "q"},
		{"'line\\\ncontinued'", "linecontinued"},
		{"'line\\\r\ncontinued'", "linecontinued"},
		{`'\xZZ'`, "xZZ"},
		{`'é'`, "é"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, unquoteString(tt.raw))
		})
	}
}
