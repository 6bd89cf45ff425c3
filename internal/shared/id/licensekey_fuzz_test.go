package id

import (
	"strings"
	"testing"
)

func FuzzParsePrefixedID(f *testing.F) {
	f.Add("mk_abcDEF123")
	f.Add("mk_")
	f.Add("_abc")
	f.Add("no-underscore")
	f.Add("mk_with_more_underscores")

	f.Fuzz(func(t *testing.T, input string) {
		prefix, shortID, err := ParsePrefixedID(input)
		if err != nil {
			return
		}
		// On success the parts must reassemble to the input.
		if prefix+"_"+shortID != input {
			t.Errorf("ParsePrefixedID(%q) = (%q, %q), does not reassemble", input, prefix, shortID)
		}
		if prefix == "" || shortID == "" {
			t.Errorf("ParsePrefixedID(%q) accepted empty part", input)
		}
		if strings.Contains(prefix, "_") {
			t.Errorf("ParsePrefixedID(%q) prefix contains separator", input)
		}
	})
}
