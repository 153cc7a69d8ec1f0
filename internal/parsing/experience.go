package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// experiencePatterns are tried in priority order against the lower-cased
// text; the first pattern that matches anywhere wins and the rest are
// skipped. Order matters and must not be rearranged.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*years?\s*of\s*experience`),
	regexp.MustCompile(`(\d+)\+\s*years?\s*of\s*experience`),
	regexp.MustCompile(`experience:\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*years?\s*in\s*the\s*field`),
}

// ExtractExperience pulls a years-of-experience figure from resume text.
// Returns 0.0 when no pattern matches; callers cannot distinguish "zero
// years" from "no experience signal found", which is inherent to the
// heuristic.
func ExtractExperience(text string) float64 {
	lower := strings.ToLower(text)

	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return float64(years)
	}
	return 0.0
}
