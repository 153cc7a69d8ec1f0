package ranking

import (
	"go.uber.org/zap"
)

// DefaultMaxFeatures caps the scoring vocabulary when no explicit cap is
// configured.
const DefaultMaxFeatures = 1000

// Scorer computes the lexical similarity between resume text and job
// requirement text. The vector space is rebuilt from scratch on every call:
// term weights depend only on the current resume/job pair, so no vocabulary
// or weighting ever leaks between candidates. That also means the same term
// can weigh differently across calls, which is intentional.
type Scorer struct {
	maxFeatures int
	logger      *zap.Logger
}

// NewScorer creates a Scorer. A non-positive maxFeatures selects
// DefaultMaxFeatures; a nil logger disables logging.
func NewScorer(maxFeatures int, logger *zap.Logger) *Scorer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{maxFeatures: maxFeatures, logger: logger}
}

// Score returns the cosine similarity of the TF-IDF vectors of the two
// texts, in [0, 1]. A degenerate corpus (either text empty of terms) scores
// 0.0; scoring never fails.
func (s *Scorer) Score(resumeText, jobText string) float64 {
	resumeCounts := termCounts(tokenize(resumeText))
	jobCounts := termCounts(tokenize(jobText))

	vocab := buildVocabulary(resumeCounts, jobCounts, s.maxFeatures)
	if len(vocab) == 0 {
		s.logger.Debug("similarity scoring degraded to zero",
			zap.String("reason", "empty corpus"))
		return 0.0
	}

	df := documentFrequencies(resumeCounts, jobCounts, vocab)
	resumeVec := tfidfVector(resumeCounts, vocab, df)
	jobVec := tfidfVector(jobCounts, vocab, df)

	if !normalize(resumeVec) || !normalize(jobVec) {
		s.logger.Debug("similarity scoring degraded to zero",
			zap.String("reason", "degenerate vector"))
		return 0.0
	}

	score := cosine(resumeVec, jobVec)
	if score < 0.0 {
		score = 0.0
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
