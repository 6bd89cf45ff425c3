package id

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantLen int
	}{
		{"default on zero", 0, DefaultKeyLength},
		{"default on negative", -3, DefaultKeyLength},
		{"explicit short", 8, 8},
		{"explicit long", 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("Generate() length = %d, want %d", len(got), tt.wantLen)
			}
			for _, c := range got {
				if !strings.ContainsRune(alphabet, c) {
					t.Errorf("Generate() produced character outside alphabet: %q", c)
				}
			}
		})
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(DefaultKeyLength)
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewLicenseKeyID(t *testing.T) {
	key, err := NewLicenseKeyID(DefaultKeyLength)
	if err != nil {
		t.Fatalf("NewLicenseKeyID() error = %v", err)
	}
	if !strings.HasPrefix(key, PrefixLicenseKey+"_") {
		t.Errorf("NewLicenseKeyID() = %q, want prefix %q", key, PrefixLicenseKey+"_")
	}
	if err := ValidateLicenseKeyID(key); err != nil {
		t.Errorf("ValidateLicenseKeyID(%q) error = %v", key, err)
	}
}

func TestValidateLicenseKeyIDInvalid(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
	}{
		{"empty", ""},
		{"no prefix", "abcdef123456"},
		{"wrong prefix", "fa_abcdef123456"},
		{"empty random part", "mk_"},
		{"illegal character", "mk_abc:def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateLicenseKeyID(tt.candidate); err == nil {
				t.Errorf("ValidateLicenseKeyID(%q) expected error", tt.candidate)
			}
		})
	}
}
