// Package parsing pulls contact details, skills, and experience out of
// resume text with fixed pattern heuristics. Every extractor degrades to a
// documented default instead of returning an error.
package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// North-American phone numbers: optional +1 prefix, optional parentheses
	// around the area code, and -, . or space separators between groups.
	phoneRE = regexp.MustCompile(`(\+?1?[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
)

// nameLineLimit bounds how far down the document the name heuristic looks.
const nameLineLimit = 10

// nameTokenLimit is the maximum number of whitespace-separated tokens a line
// may have and still qualify as a candidate name.
const nameTokenLimit = 4

// ExtractContactInfo pulls name, email, and phone from resume text. Each
// heuristic runs independently; a miss yields that field's default value,
// so the result is always fully populated.
func ExtractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:  extractName(text),
		Email: extractEmail(text),
		Phone: extractPhone(text),
	}
}

func extractEmail(text string) string {
	if m := emailRE.FindString(text); m != "" {
		return m
	}
	return types.DefaultEmail
}

// extractPhone concatenates the matched groups of the first phone match
// without inserting separators, so "(415) 555-1234" becomes "4155551234".
// The prefix group can capture the whitespace preceding the number, so the
// joined string is trimmed. A "+1" or "1-" prefix survives.
func extractPhone(text string) string {
	m := phoneRE.FindStringSubmatch(text)
	if m == nil {
		return types.DefaultPhone
	}
	return strings.TrimSpace(m[1] + m[2] + m[3] + m[4])
}

// extractName scans the first ten non-empty lines for one that, after
// trimming, has at most four tokens and no digit. The first qualifying line
// wins. This is deliberately crude: section titles or address fragments that
// satisfy the token/digit test will be mistaken for a name.
func extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameLineLimit {
			break
		}
		if len(strings.Fields(line)) <= nameTokenLimit && !containsDigit(line) {
			return line
		}
	}
	return types.DefaultCandidateName
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
