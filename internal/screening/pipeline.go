// Package screening orchestrates the resume-analysis pipeline: text
// extraction, contact/skill/experience heuristics, and similarity scoring
// against a job requirement profile.
package screening

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// Options configures pipeline construction.
type Options struct {
	// MaxFeatures caps the similarity-scoring vocabulary. Non-positive
	// selects ranking.DefaultMaxFeatures.
	MaxFeatures int
}

// Pipeline screens one resume against one job requirement profile. It holds
// no mutable state across calls, so a single Pipeline is safe for concurrent
// use across many resumes.
type Pipeline struct {
	extractor *ingestion.Extractor
	scorer    *ranking.Scorer
	logger    *zap.Logger
}

// New creates a Pipeline with default options. A nil logger disables logging.
func New(logger *zap.Logger) *Pipeline {
	return NewWithOptions(Options{}, logger)
}

// NewWithOptions creates a Pipeline with explicit options.
func NewWithOptions(opts Options, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		extractor: ingestion.NewExtractor(logger),
		scorer:    ranking.NewScorer(opts.MaxFeatures, logger),
		logger:    logger,
	}
}

// Run screens the document against the profile. Text extraction runs first;
// the contact, skill, experience, and scoring steps then work independently
// on the extracted text. Every step absorbs its own failures, so the result
// is always fully populated: a document that yields no text produces
// all-default contact info, no skills, zero experience, and score 0.0.
//
// The extracted text is recorded on the document for callers that persist it.
func (p *Pipeline) Run(doc *types.ResumeDocument, profile types.JobRequirementProfile) types.ScreeningResult {
	text := p.extractor.ExtractText(doc.Data, doc.Format)
	doc.SetText(text)

	result := types.ScreeningResult{
		Contact:         parsing.ExtractContactInfo(text),
		Skills:          parsing.ExtractSkills(text),
		ExperienceYears: parsing.ExtractExperience(text),
		Score:           p.scorer.Score(text, profile.QueryString()),
	}

	p.logger.Debug("resume screened",
		zap.String("filename", doc.Filename),
		zap.String("format", string(doc.Format)),
		zap.Int("text_len", len(text)),
		zap.Int("skills", len(result.Skills)),
		zap.Float64("score", result.Score))

	return result
}
