// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"path/filepath"
	"strings"
)

// DocumentFormat is the declared container format of an uploaded resume.
// It is a closed set: dispatch on it is always an exhaustive switch.
type DocumentFormat string

// Supported document formats. Anything else maps to FormatUnknown.
const (
	FormatPDF     DocumentFormat = "pdf"
	FormatDOCX    DocumentFormat = "docx"
	FormatUnknown DocumentFormat = "unknown"
)

// FormatFromFilename derives the document format from a filename extension.
func FormatFromFilename(name string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// ResumeDocument is one uploaded resume: raw bytes, the format declared by
// the upload layer, and the plain text derived from them. The text is set
// exactly once by extraction; later writes are ignored.
type ResumeDocument struct {
	Filename string
	Format   DocumentFormat
	Data     []byte

	text      string
	extracted bool
}

// NewResumeDocument builds a ResumeDocument, deriving the format from the filename.
func NewResumeDocument(filename string, data []byte) *ResumeDocument {
	return &ResumeDocument{
		Filename: filename,
		Format:   FormatFromFilename(filename),
		Data:     data,
	}
}

// SetText records the extracted plain text. Only the first call has any
// effect; the text is immutable afterwards.
func (d *ResumeDocument) SetText(text string) {
	if d.extracted {
		return
	}
	d.text = text
	d.extracted = true
}

// Text returns the extracted plain text, or "" if extraction has not run.
func (d *ResumeDocument) Text() string {
	return d.text
}

// Extracted reports whether text extraction has run for this document.
// An empty Text with Extracted true means the document produced no text.
func (d *ResumeDocument) Extracted() bool {
	return d.extracted
}

// Default contact values used when a heuristic finds no match. These exact
// strings are part of the screening contract: downstream consumers (outreach,
// exports) compare against them.
const (
	DefaultCandidateName = "Unknown Candidate"
	DefaultEmail         = "no-email@example.com"
	DefaultPhone         = "No phone"
)

// ContactInfo holds the contact details pulled from resume text.
// All three fields are always populated; misses fall back to the defaults.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ScreeningResult is the complete outcome of screening one resume against
// one job requirement profile. It is always fully populated: extraction
// failures degrade to defaults, never to missing fields.
type ScreeningResult struct {
	Contact         ContactInfo `json:"contact"`
	Skills          []string    `json:"skills"`
	ExperienceYears float64     `json:"experience_years"`
	Score           float64     `json:"score"`
}

// ScreenedResume pairs a screening result with the file it came from,
// for ranking and reporting.
type ScreenedResume struct {
	Filename string          `json:"filename"`
	Result   ScreeningResult `json:"result"`
}
