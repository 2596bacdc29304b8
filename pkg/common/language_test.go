package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageCode(t *testing.T) {
	cases := map[string]string{
		"english":   "en",
		" English ": "en",
		"japanese":  "ja",
		"thai":      "th",
		"en":        "en",
		"FR":        "fr",
		"en-US":     "en",
		"pt_BR":     "pt",
		"klingon":   "klingon",
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, LanguageCode(in), "language %q", in)
	}
}
