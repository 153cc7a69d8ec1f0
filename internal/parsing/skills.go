package parsing

import "strings"

// SkillVocabulary is the fixed, ordered list of recognized skill terms.
// Extraction output preserves this order, not the order of appearance in
// the resume. The list is closed: anything outside it is never reported.
var SkillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"sql", "mongodb", "postgresql", "mysql", "aws", "azure", "docker",
	"kubernetes", "git", "html", "css", "bootstrap", "jquery", "php",
	"c++", "c#", ".net", "spring", "django", "flask", "express",
	"machine learning", "ai", "data science", "statistics", "r",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	"tableau", "power bi", "excel", "word", "powerpoint",
}

// ExtractSkills reports which vocabulary terms appear in the text.
// Matching is case-insensitive substring containment, so short terms like
// "r" or "ai" will match inside unrelated words. That looseness is inherited
// behavior; tightening it to word boundaries would change which candidates
// surface for short-named skills.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0)
	for _, skill := range SkillVocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
