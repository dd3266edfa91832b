package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/catalog"
	"github.com/jonathan/jobmatch/internal/engine"
	"github.com/jonathan/jobmatch/internal/types"
)

var (
	matchCandidatePath string
	matchJobPath       string
	matchCatalogPath   string
	matchShowGaps      bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate file against a job file",
	Long:  `Score a candidate profile against a job requisition entirely offline, from local JSON files. Gap enrichment uses the embedded learning-resource catalog unless --catalog points at a custom one.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchCandidatePath, "candidate", "", "Path to candidate JSON file (required)")
	matchCmd.Flags().StringVar(&matchJobPath, "job", "", "Path to job JSON file (required)")
	matchCmd.Flags().StringVar(&matchCatalogPath, "catalog", "", "Path to a learning-resource catalog JSON file")
	matchCmd.Flags().BoolVar(&matchShowGaps, "gaps", false, "Include learning resources for each gap")
	matchCmd.MarkFlagRequired("candidate")
	matchCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cand, err := loadCandidateFile(matchCandidatePath)
	if err != nil {
		return err
	}
	job, err := loadJobFile(matchJobPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(matchCatalogPath)
	if err != nil {
		return err
	}

	store := newFileStore(cand, job)
	svc := engine.New(store, store, cat, engine.Options{})

	ctx := cmd.Context()
	result, err := svc.ComputeMatch(ctx, store.candidateID, job.ID)
	if err != nil {
		var incomplete *engine.IncompleteProfileError
		if errors.As(err, &incomplete) {
			fmt.Printf("Cannot score match: %v\n", err)
			fmt.Println("Add skills to the candidate profile and try again.")
			return nil
		}
		return err
	}

	fmt.Printf("Match: %s at %s\n", job.Title, job.Company)
	fmt.Printf("  Overall:    %d/100\n", result.Overall)
	fmt.Printf("  Skills:     %.1f\n", result.SkillScore)
	fmt.Printf("  Experience: %.1f\n", result.ExperienceScore)
	fmt.Printf("  Education:  %.1f\n", result.EducationScore)
	if len(result.Strengths) > 0 {
		fmt.Printf("  Strengths:  %s\n", strings.Join(result.Strengths, ", "))
	}

	if !matchShowGaps {
		for _, gap := range result.Gaps {
			fmt.Printf("  Gap: %s (have %d, need %d)\n", gap.Skill, gap.Have, gap.Need)
		}
		return nil
	}

	analysis, err := svc.ComputeGaps(ctx, store.candidateID, job.ID)
	if err != nil {
		return err
	}
	printGapAnalysis(analysis)
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.Load(path)
	}
	return catalog.Default()
}

func printGapAnalysis(analysis *types.GapAnalysis) {
	if len(analysis.Gaps) == 0 {
		fmt.Println("  No skill gaps.")
		return
	}
	for _, gap := range analysis.Gaps {
		fmt.Printf("  Gap: %s (have %d, need %d, %d%% there)\n", gap.Skill, gap.Have, gap.Need, gap.ProgressPct)
		for _, res := range gap.Resources {
			fmt.Printf("       [%s] %s - %s\n", res.Difficulty, res.Title, res.URL)
		}
	}
}
