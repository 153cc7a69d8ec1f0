package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"years of experience", "Has 5 years of experience in python.", 5.0},
		{"singular year", "1 year of experience", 1.0},
		{"plus years", "7+ years of experience shipping software", 7.0},
		{"colon form", "Experience: 3 years", 3.0},
		{"in the field", "12 years in the field", 12.0},
		{"case insensitive", "10 YEARS OF EXPERIENCE", 10.0},
		{"no signal", "Motivated self-starter", 0.0},
		{"empty text", "", 0.0},
		{"zero years stated", "0 years of experience", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractExperience(tt.text))
		})
	}
}

func TestExtractExperience_PatternPriority(t *testing.T) {
	// Both pattern 1 and pattern 3 match; pattern 1's capture must win.
	text := "Experience: 3 years. Also 8 years of experience overall."
	assert.Equal(t, 8.0, ExtractExperience(text))
}

func TestExtractExperience_FirstOccurrenceWithinPattern(t *testing.T) {
	text := "2 years of experience in Go and 9 years of experience total"
	assert.Equal(t, 2.0, ExtractExperience(text))
}
