package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tata Consultancy Services Ltd.", "tata consultancy services ltd"},
		{"  Reliance   Industries  ", "reliance industries"},
		{"M&M Financial", "m m financial"},
		{"Élodie & Co.", "elodie co"},
		{"ABC-123 (Holdings)", "abc 123 holdings"},
		{"...", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Tata Consultancy Services Ltd.",
		"Élodie & Co.",
		"ＴＣＳ",      // fullwidth compatibility forms
		"Ｒｅｌｉａｎｃｅ！",
		"plain lowercase already",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
