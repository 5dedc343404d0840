// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Report fleet-wide doctor workload and utilization",
	Long: `Workload aggregates every active doctor's upcoming appointments over
the reporting window and prints a per-doctor workload status and
utilization rate against the assumed weekly capacity.`,
	RunE: runWorkload,
}

func runWorkload(cmd *cobra.Command, args []string) error {
	dateStr, _ := cmd.Flags().GetString("date")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	referenceDate, err := parseDateFlag(dateStr)
	if err != nil {
		return err
	}

	allocator, store, err := openAllocator(engineConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := allocator.WorkloadAnalytics(context.Background(), referenceDate)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No active doctors.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-25s  %-18s  %-8s  %-9s  %s\n",
		"Doctor", "Specialization", "Upcoming", "Status", "Utilization")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 75))

	for _, e := range entries {
		name := e.Doctor.Name
		if len(name) > 25 {
			name = name[:22] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-25s  %-18s  %-8d  %-9s  %.0f%%\n",
			name, e.Doctor.Specialization, e.Workload, e.Status, e.UtilizationRate)
	}

	fmt.Fprintf(os.Stdout, "\n%d doctors\n", len(entries))
	return nil
}

func init() {
	workloadCmd.Flags().String("date", "", "reporting window start (YYYY-MM-DD, default today)")
	workloadCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(workloadCmd)
}
