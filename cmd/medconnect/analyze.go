// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [symptom description]",
	Short: "Analyze a symptom description and recommend a specialization",
	Long: `Analyze classifies a free-text symptom description against the medical
knowledge base. It reports the recommended specialization, a severity tier,
a calibrated confidence score, matched symptoms, and advice text.

With --allocate the recommended specialization is immediately fed into
doctor allocation against the local directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	age, _ := cmd.Flags().GetInt("age")
	gender, _ := cmd.Flags().GetString("gender")
	chain, _ := cmd.Flags().GetBool("allocate")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := engineConfig()
	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	result := analyzer.AnalyzeSymptoms(types.SymptomQuery{
		Text:   strings.Join(args, " "),
		Age:    age,
		Gender: types.Gender(gender),
	})

	if !chain {
		if jsonOutput {
			return printJSON(result)
		}
		printAnalysis(result)
		return nil
	}

	allocator, store, err := openAllocator(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	allocation, err := allocator.Allocate(context.Background(), result.Specialization, time.Time{})
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(struct {
			Analysis   types.AnalysisResult   `json:"analysis"`
			Allocation types.AllocationResult `json:"allocation"`
		}{result, allocation})
	}

	printAnalysis(result)
	fmt.Println()
	printAllocation(allocation)
	return nil
}

func printAnalysis(r types.AnalysisResult) {
	fmt.Printf("Specialization:  %s\n", r.Specialization)
	fmt.Printf("Severity:        %s\n", r.Severity)
	fmt.Printf("Confidence:      %.2f\n", r.Confidence)

	if len(r.MatchedSymptoms) > 0 {
		fmt.Printf("Matched:         %s\n", strings.Join(r.MatchedSymptoms, ", "))
	}
	if len(r.AlternativeSpecializations) > 0 {
		fmt.Printf("Alternatives:    %s\n", strings.Join(r.AlternativeSpecializations, ", "))
	}

	fmt.Println("Recommendations:")
	for _, rec := range r.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	analyzeCmd.Flags().Int("age", 0, "patient age in years")
	analyzeCmd.Flags().String("gender", "", "patient gender: female, male, other")
	analyzeCmd.Flags().Bool("allocate", false, "allocate a doctor for the recommended specialization")
	analyzeCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(analyzeCmd)
}
