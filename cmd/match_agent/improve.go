package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/engine"
)

var (
	improveCandidate string
	improveJobs      []string
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Recommend skill improvements for a candidate",
	Long:  `Rank the candidate's jobs, aggregate gaps across the top matches, and print prioritized skill recommendations with a short action plan.`,
	RunE:  runImprove,
}

func init() {
	improveCmd.Flags().StringVar(&improveCandidate, "candidate", "", "Candidate UUID (required)")
	improveCmd.Flags().StringSliceVar(&improveJobs, "jobs", nil, "Job UUIDs to consider (comma-separated)")
	improveCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, _ []string) error {
	candidateID, jobIDs, err := parseRankArgs(improveCandidate, improveJobs)
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
	improvements, err := svc.RecommendImprovements(ctx, candidateID, jobIDs)
	if err != nil {
		return err
	}

	fmt.Printf("Recommendations across top %d jobs:\n", improvements.JobsConsidered)
	if len(improvements.Recommendations) == 0 {
		fmt.Println("  No skill gaps found.")
		return nil
	}
	for i, rec := range improvements.Recommendations {
		fmt.Printf("%2d. %s (impact %.1f) wanted by: %s\n", i+1, rec.Skill, rec.Impact, strings.Join(rec.JobTitles, ", "))
	}
	if len(improvements.Actions) > 0 {
		fmt.Println("Next steps:")
		for _, action := range improvements.Actions {
			fmt.Printf("  - %s\n", action)
		}
	}
	return nil
}
