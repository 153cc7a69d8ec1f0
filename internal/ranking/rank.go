package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// Rank returns the screened resumes sorted by score descending. Ties are
// broken by filename so the shortlist is stable across runs.
func Rank(screened []types.ScreenedResume) []types.ScreenedResume {
	ranked := make([]types.ScreenedResume, len(screened))
	copy(ranked, screened)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return ranked[i].Filename < ranked[j].Filename
	})
	return ranked
}
