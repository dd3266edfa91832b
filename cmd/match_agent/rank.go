package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/db"
	"github.com/jonathan/jobmatch/internal/engine"
)

var (
	rankCandidate string
	rankJobs      []string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank jobs for a candidate",
	Long:  `Score a candidate against a set of jobs from the database and print them ranked by match score. With no --jobs flag the candidate's own job list is used.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankCandidate, "candidate", "", "Candidate UUID (required)")
	rankCmd.Flags().StringSliceVar(&rankJobs, "jobs", nil, "Job UUIDs to rank (comma-separated)")
	rankCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	candidateID, jobIDs, err := parseRankArgs(rankCandidate, rankJobs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := connectDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := engine.New(database, database, database, engine.Options{})
	ranked, err := svc.RankJobs(ctx, candidateID, jobIDs)
	if err != nil {
		return err
	}

	for i, job := range ranked.Jobs {
		if job.Failed {
			fmt.Printf("%2d. [failed] %s: %s\n", i+1, job.Title, job.Error)
			continue
		}
		fmt.Printf("%2d. %3d/100  %s at %s\n", i+1, job.Score, job.Title, job.Company)
	}
	fmt.Printf("Scored %d of %d jobs", ranked.ScoredCount, len(ranked.Jobs))
	if ranked.ScoredCount > 0 {
		fmt.Printf(", average score %.1f", ranked.AverageScore)
	}
	fmt.Println()
	return nil
}

// parseRankArgs parses the candidate and optional job UUID flags.
func parseRankArgs(candidate string, jobs []string) (uuid.UUID, []uuid.UUID, error) {
	candidateID, err := uuid.Parse(candidate)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid candidate id %q: %w", candidate, err)
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, raw := range jobs {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("invalid job id %q: %w", raw, err)
		}
		jobIDs = append(jobIDs, jobID)
	}
	return candidateID, jobIDs, nil
}

// connectDatabase opens the pool from the DATABASE_URL environment variable.
func connectDatabase(ctx context.Context) (*db.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return db.Connect(ctx, databaseURL)
}
