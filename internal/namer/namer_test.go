// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain author name", in: "Jane Doe", want: "Jane_Doe"},
		{name: "already sanitized", in: "Jane_Doe", want: "Jane_Doe"},
		{name: "illegal characters dropped", in: `Jane<>:"/\|?*Doe`, want: "JaneDoe"},
		{name: "multiple spaces collapse", in: "Jane   Doe", want: "Jane_Doe"},
		{name: "underscore runs collapse", in: "Jane___Doe", want: "Jane_Doe"},
		{name: "leading and trailing trimmed", in: " Jane Doe ", want: "Jane_Doe"},
		{name: "mixed separators", in: "_ Jane _ Doe _", want: "Jane_Doe"},
		{name: "unicode preserved", in: "José Älvarez", want: "José_Älvarez"},
		{name: "empty input", in: "", want: ""},
		{name: "all illegal characters", in: `<>:"/\|?*`, want: ""},
		{name: "only spaces", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe",
		"A. B. Cidre-Søren",
		`path/to\file?`,
		"   ",
		"__x__y__",
		`we"ird * na<me>`,
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "Sanitize(Sanitize(%q))", in)
	}
}

func TestSanitizeOutputIsSafe(t *testing.T) {
	inputs := []string{
		"Jane / Doe",
		`C:\Users\thesis`,
		"a|b?c*d",
		"__ lead _ trail __",
	}
	for _, in := range inputs {
		out := Sanitize(in)
		assert.NotContains(t, out, " ")
		for _, c := range `<>:"/\|?*` {
			assert.NotContains(t, out, string(c))
		}
		assert.False(t, strings.HasPrefix(out, "_"), "leading separator in %q", out)
		assert.False(t, strings.HasSuffix(out, "_"), "trailing separator in %q", out)
		assert.NotContains(t, out, "__")
	}
}
