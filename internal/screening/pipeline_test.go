package screening

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

var testProfile = types.JobRequirementProfile{
	Title:           "Software Developer",
	RequiredSkills:  []string{"python", "javascript", "sql"},
	PreferredSkills: []string{"react", "node.js", "aws"},
	MinExperience:   2.0,
}

// buildResumeDocx wraps resume lines into a minimal docx archive.
func buildResumeDocx(t *testing.T, lines ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(line)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write(body.Bytes())
	require.NoError(t, err)

	rels, err := w.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestPipeline_RunDocx(t *testing.T) {
	p := New(nil)

	data := buildResumeDocx(t,
		"John Smith",
		"Has 5 years of experience in python and sql.",
		"Contact: jane.doe@example.com, (415) 555-1234",
	)
	doc := types.NewResumeDocument("john.docx", data)

	result := p.Run(doc, testProfile)

	assert.Equal(t, "John Smith", result.Contact.Name)
	assert.Equal(t, "jane.doe@example.com", result.Contact.Email)
	assert.Equal(t, "4155551234", result.Contact.Phone)
	assert.Equal(t, 5.0, result.ExperienceYears)
	assert.Contains(t, result.Skills, "python")
	assert.Contains(t, result.Skills, "sql")
	assert.Greater(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)

	// Extracted text is recorded on the document for persistence.
	assert.True(t, doc.Extracted())
	assert.Contains(t, doc.Text(), "John Smith")
}

func TestPipeline_UnknownFormatStillCompleteResult(t *testing.T) {
	p := New(nil)

	doc := types.NewResumeDocument("resume.txt", []byte("plenty of bytes here"))
	result := p.Run(doc, testProfile)

	assert.Equal(t, types.DefaultCandidateName, result.Contact.Name)
	assert.Equal(t, types.DefaultEmail, result.Contact.Email)
	assert.Equal(t, types.DefaultPhone, result.Contact.Phone)
	assert.Empty(t, result.Skills)
	assert.Equal(t, 0.0, result.ExperienceYears)
	assert.Equal(t, 0.0, result.Score)
}

func TestPipeline_CorruptDocumentDegrades(t *testing.T) {
	p := New(nil)

	doc := types.NewResumeDocument("broken.pdf", []byte("not really a pdf"))
	result := p.Run(doc, testProfile)

	assert.Equal(t, types.DefaultCandidateName, result.Contact.Name)
	assert.Equal(t, 0.0, result.Score)
	assert.True(t, doc.Extracted())
	assert.Equal(t, "", doc.Text())
}

func TestPipeline_Deterministic(t *testing.T) {
	p := New(nil)

	data := buildResumeDocx(t, "Jane Doe", "7+ years of experience with aws and docker")

	first := p.Run(types.NewResumeDocument("jane.docx", data), testProfile)
	for i := 0; i < 3; i++ {
		again := p.Run(types.NewResumeDocument("jane.docx", data), testProfile)
		assert.Equal(t, first, again)
	}
}
