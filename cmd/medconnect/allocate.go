// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate <specialization>",
	Short: "Allocate the best-fit doctor for a specialization",
	Long: `Allocate scores every available doctor for the required specialization,
combining specialization fit, upcoming workload over the next seven days,
and availability. It prints the best allocation with its reasoning plus up
to two ranked alternatives.`,
	Args: cobra.ExactArgs(1),
	RunE: runAllocate,
}

func runAllocate(cmd *cobra.Command, args []string) error {
	dateStr, _ := cmd.Flags().GetString("date")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	preferredDate, err := parseDateFlag(dateStr)
	if err != nil {
		return err
	}

	allocator, store, err := openAllocator(engineConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := allocator.Allocate(context.Background(), args[0], preferredDate)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(result)
	}
	printAllocation(result)
	return nil
}

func printAllocation(r types.AllocationResult) {
	if r.Doctor == nil {
		fmt.Printf("No allocation: %s\n", r.Reason)
		return
	}

	fmt.Printf("Doctor:    %s (%s)\n", r.Doctor.Name, r.Doctor.Specialization)
	fmt.Printf("Score:     %.2f\n", r.Score)
	fmt.Printf("Workload:  %d upcoming appointments\n", r.Workload)
	fmt.Printf("Reason:    %s\n", r.Reason)

	if len(r.Alternatives) > 0 {
		fmt.Println("Alternatives:")
		for _, alt := range r.Alternatives {
			fmt.Printf("  - %s (%s)  score %.2f, workload %d\n",
				alt.Doctor.Name, alt.Doctor.Specialization, alt.Score, alt.Workload)
		}
	}
}

// parseDateFlag parses a --date value. Empty means "today".
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

func init() {
	allocateCmd.Flags().String("date", "", "preferred appointment date (YYYY-MM-DD, default today)")
	allocateCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(allocateCmd)
}
