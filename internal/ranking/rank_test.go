package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestRank_ByScoreDescending(t *testing.T) {
	screened := []types.ScreenedResume{
		{Filename: "low.pdf", Result: types.ScreeningResult{Score: 0.2}},
		{Filename: "high.pdf", Result: types.ScreeningResult{Score: 0.9}},
		{Filename: "mid.pdf", Result: types.ScreeningResult{Score: 0.5}},
	}

	ranked := Rank(screened)

	assert.Equal(t, "high.pdf", ranked[0].Filename)
	assert.Equal(t, "mid.pdf", ranked[1].Filename)
	assert.Equal(t, "low.pdf", ranked[2].Filename)
}

func TestRank_TieBrokenByFilename(t *testing.T) {
	screened := []types.ScreenedResume{
		{Filename: "b.pdf", Result: types.ScreeningResult{Score: 0.5}},
		{Filename: "a.pdf", Result: types.ScreeningResult{Score: 0.5}},
	}

	ranked := Rank(screened)

	assert.Equal(t, "a.pdf", ranked[0].Filename)
	assert.Equal(t, "b.pdf", ranked[1].Filename)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	screened := []types.ScreenedResume{
		{Filename: "low.pdf", Result: types.ScreeningResult{Score: 0.1}},
		{Filename: "high.pdf", Result: types.ScreeningResult{Score: 0.8}},
	}

	_ = Rank(screened)

	assert.Equal(t, "low.pdf", screened[0].Filename)
	assert.Equal(t, "high.pdf", screened[1].Filename)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
