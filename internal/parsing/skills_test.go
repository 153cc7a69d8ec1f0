package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_VocabularyOrder(t *testing.T) {
	// Mention skills in reverse vocabulary order; output must still follow
	// vocabulary order, not order of appearance.
	text := "Worked with sql, then react, then java, then python."

	// "r" tags along via the substring rule: "Worked" contains it.
	skills := ExtractSkills(text)
	assert.Equal(t, []string{"python", "java", "react", "sql", "r"}, skills)
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := ExtractSkills("PYTHON and Docker and KuBeRnEtEs")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "kubernetes")
}

func TestExtractSkills_NoMatches(t *testing.T) {
	skills := ExtractSkills("zzz qqq xxx")

	assert.Empty(t, skills)
	assert.NotNil(t, skills)
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	skills := ExtractSkills("python python python")

	count := 0
	for _, s := range skills {
		if s == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_SubstringFalsePositives(t *testing.T) {
	// Substring containment is the documented matching rule, so "r" matches
	// inside "Worked" and "ai" inside "maintained". Inherited looseness, not
	// a bug.
	skills := ExtractSkills("Worked on maintained systems")

	assert.Contains(t, skills, "r")
	assert.Contains(t, skills, "ai")
}

func TestExtractSkills_SubsetOfVocabulary(t *testing.T) {
	vocab := make(map[string]bool, len(SkillVocabulary))
	for _, s := range SkillVocabulary {
		vocab[s] = true
	}

	skills := ExtractSkills(strings.Join(SkillVocabulary, " "))
	for _, s := range skills {
		assert.True(t, vocab[s], "extracted skill %q must come from the vocabulary", s)
	}
	// Every vocabulary term trivially contains itself.
	assert.Equal(t, SkillVocabulary, skills)
}
