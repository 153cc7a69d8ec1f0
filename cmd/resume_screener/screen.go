package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	screenJobPath     string
	screenMaxFeatures int
	screenVerbose     bool
)

var screenCmd = &cobra.Command{
	Use:   "screen --job <profile.json> <resume files...>",
	Short: "Screen resumes against a job profile",
	Long: `Screen one or more PDF or DOCX resumes against a job requirement profile
and print the ranked results as JSON. Runs entirely offline, no database
or mail server needed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenJobPath, "job", "", "Path to job requirement profile JSON (required)")
	screenCmd.Flags().IntVar(&screenMaxFeatures, "max-features", 0, "Vocabulary cap for similarity scoring")
	screenCmd.Flags().BoolVar(&screenVerbose, "verbose", false, "Print detailed debug information")
	_ = screenCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(screenCmd)
}

// screenOutput is one ranked entry in the JSON report.
type screenOutput struct {
	Filename        string   `json:"filename"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Score           float64  `json:"score"`
	Error           string   `json:"error,omitempty"`
}

func runScreen(cmd *cobra.Command, args []string) error {
	profile, err := loadJobProfile(screenJobPath)
	if err != nil {
		return err
	}

	log, err := logger.New(false, screenVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	var items []screening.BatchItem
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", path, err)
		}
		items = append(items, screening.BatchItem{Filename: path, Data: data})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pipeline := screening.NewWithOptions(screening.Options{MaxFeatures: screenMaxFeatures}, log)
	results := pipeline.RunBatch(ctx, items, profile, screening.DefaultBatchWorkers)

	var screened []types.ScreenedResume
	failed := map[string]string{}
	for _, res := range results {
		if res.Err != nil {
			failed[res.Filename] = res.Err.Error()
			continue
		}
		screened = append(screened, types.ScreenedResume{Filename: res.Filename, Result: res.Result})
	}
	ranked := ranking.Rank(screened)

	if screenVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintJobProfile(&profile)
		printer.PrintRankedResults(ranked)
	}

	var out []screenOutput
	for _, sr := range ranked {
		out = append(out, screenOutput{
			Filename:        sr.Filename,
			Name:            sr.Result.Contact.Name,
			Email:           sr.Result.Contact.Email,
			Phone:           sr.Result.Contact.Phone,
			Skills:          sr.Result.Skills,
			ExperienceYears: sr.Result.ExperienceYears,
			Score:           sr.Result.Score,
		})
	}
	for _, res := range results {
		if msg, ok := failed[res.Filename]; ok {
			out = append(out, screenOutput{Filename: res.Filename, Error: msg})
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// loadJobProfile reads and validates a job requirement profile from JSON.
func loadJobProfile(path string) (types.JobRequirementProfile, error) {
	var profile types.JobRequirementProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read job profile %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse job profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return profile, fmt.Errorf("invalid job profile: %w", err)
	}
	return profile, nil
}
