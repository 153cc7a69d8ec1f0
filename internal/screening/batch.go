package screening

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultBatchWorkers bounds concurrent screening when the caller does not
// choose a worker count.
const DefaultBatchWorkers = 3

// BatchItem is one document in a batch screening request.
type BatchItem struct {
	Filename string
	Data     []byte
}

// BatchResult is the outcome for one batch item. Result is always fully
// populated; Err records a per-file failure (unsupported format, no usable
// text) that the upload layer surfaces without discarding the result.
type BatchResult struct {
	Filename   string
	Result     types.ScreeningResult
	ResumeText string
	Err        error
}

// RunBatch screens the items concurrently against one profile. Resumes are
// independent, so the only coordination is the worker limit; output order
// matches input order regardless of completion order. The context cancels
// items that have not started yet.
func (p *Pipeline) RunBatch(ctx context.Context, items []BatchItem, profile types.JobRequirementProfile, workers int) []BatchResult {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	results := make([]BatchResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BatchResult{Filename: item.Filename, Err: err}
				return nil
			}
			results[i] = p.runOne(item, profile)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (p *Pipeline) runOne(item BatchItem, profile types.JobRequirementProfile) BatchResult {
	doc := types.NewResumeDocument(item.Filename, item.Data)
	result := p.Run(doc, profile)

	res := BatchResult{
		Filename:   item.Filename,
		Result:     result,
		ResumeText: doc.Text(),
	}
	switch {
	case doc.Format == types.FormatUnknown:
		res.Err = ErrUnsupportedFormat
	case doc.Text() == "":
		res.Err = ErrNoUsableText
	}
	return res
}
