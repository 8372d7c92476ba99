package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Nursing Homes", "nursing-homes"},
		{"ampersand and apostrophe", "Dementia & Alzheimer's Care", "dementia-and-alzheimers-care"},
		{"already a slug", "elder-care", "elder-care"},
		{"punctuation run collapses", "Post-Hospital  /  Care!!", "post-hospital-care"},
		{"leading and trailing junk", "  --Home Health--  ", "home-health"},
		{"digits kept", "24x7 ICU Care", "24x7-icu-care"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
		{"unicode dropped as separators", "Café Care", "caf-care"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	t.Parallel()

	in := "Dementia & Alzheimer's Care"
	first := Make(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Make(in))
	}
}

func TestMakeNotInjective(t *testing.T) {
	t.Parallel()

	// Distinct labels that differ only in punctuation collide. Callers
	// resolving slugs back to names rely on last-write-wins, not on
	// uniqueness.
	assert.Equal(t, Make("Palliative Care"), Make("Palliative, Care"))
	assert.Equal(t, Make("Elder-Care"), Make("Elder Care"))
}

func TestMakeOutputCharset(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Dementia & Alzheimer's Care",
		"  Weird -- Input ## 42  ",
		"ALL CAPS NAME",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		s := Make(in)
		assert.False(t, strings.HasPrefix(s, "-"), "slug %q starts with hyphen", s)
		assert.False(t, strings.HasSuffix(s, "-"), "slug %q ends with hyphen", s)
		assert.NotContains(t, s, "--")
		for _, r := range s {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "slug %q contains %q", s, r)
		}
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Shanti Nursing Home-Mumbai", "shanti-nursing-home-mumbai"},
		{"accents stripped", "Café Médical-Delhi", "cafe-medical-delhi"},
		{"non ascii dropped", "आश्रय Care Home-Pune", "care-home-pune"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestFoldCapsLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("veryverylongname-", 20)
	s := Fold(long)
	assert.LessOrEqual(t, len(s), maxFoldedLen)
	assert.False(t, strings.HasSuffix(s, "-"))
}

func TestUnique(t *testing.T) {
	t.Parallel()

	t.Run("free base returned unchanged", func(t *testing.T) {
		t.Parallel()
		seen := map[string]bool{}
		assert.Equal(t, "care-home-delhi", Unique("care-home-delhi", seen))
	})

	t.Run("first collision gets -2", func(t *testing.T) {
		t.Parallel()
		seen := map[string]bool{"care-home-delhi": true}
		assert.Equal(t, "care-home-delhi-2", Unique("care-home-delhi", seen))
	})

	t.Run("suffixes count up", func(t *testing.T) {
		t.Parallel()
		seen := map[string]bool{
			"care-home-delhi":   true,
			"care-home-delhi-2": true,
			"care-home-delhi-3": true,
		}
		assert.Equal(t, "care-home-delhi-4", Unique("care-home-delhi", seen))
	})

	t.Run("seen set not modified", func(t *testing.T) {
		t.Parallel()
		seen := map[string]bool{"x": true}
		_ = Unique("x", seen)
		assert.Len(t, seen, 1)
	})
}
