// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cibinnnnnn/medconnect/internal/directory"
	"github.com/cibinnnnnn/medconnect/pkg/types"
)

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Manage the doctor directory (add, list, import, availability)",
}

// --- add subcommand ---

var doctorsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a doctor to the directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoctorsAdd,
}

func runDoctorsAdd(cmd *cobra.Command, args []string) error {
	spec, _ := cmd.Flags().GetString("specialization")
	days, _ := cmd.Flags().GetString("days")
	unavailable, _ := cmd.Flags().GetBool("unavailable")

	if spec == "" {
		return fmt.Errorf("--specialization is required")
	}

	store, err := directory.Open(engineConfig().Directory)
	if err != nil {
		return err
	}
	defer store.Close()

	doctor, err := store.AddDoctor(context.Background(), types.DoctorProfile{
		Name:           args[0],
		Specialization: spec,
		AvailableDays:  days,
		IsAvailable:    !unavailable,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (%s) id=%s\n", doctor.Name, doctor.Specialization, doctor.ID)
	return nil
}

// --- list subcommand ---

var doctorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List doctors in the directory",
	RunE:  runDoctorsList,
}

func runDoctorsList(cmd *cobra.Command, args []string) error {
	availableOnly, _ := cmd.Flags().GetBool("available")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := directory.Open(engineConfig().Directory)
	if err != nil {
		return err
	}
	defer store.Close()

	var doctors []types.DoctorProfile
	if availableOnly {
		doctors, err = store.ListAvailable(context.Background())
	} else {
		doctors, err = store.ListActive(context.Background())
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(doctors)
	}

	if len(doctors) == 0 {
		fmt.Println("No doctors in the directory.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-25s  %-18s  %-9s  %s\n",
		"ID", "Name", "Specialization", "Available", "Days")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, d := range doctors {
		available := "no"
		if d.IsAvailable {
			available = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-25s  %-18s  %-9s  %s\n",
			d.ID, d.Name, d.Specialization, available, d.AvailableDays)
	}

	fmt.Fprintf(os.Stdout, "\n%d doctors\n", len(doctors))
	return nil
}

// --- import subcommand ---

var doctorsImportCmd = &cobra.Command{
	Use:   "import <seed.yaml>",
	Short: "Import doctors and appointments from a YAML seed file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoctorsImport,
}

func runDoctorsImport(cmd *cobra.Command, args []string) error {
	store, err := directory.Open(engineConfig().Directory)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.ImportSeed(context.Background(), args[0], os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d seed entries failed", summary.Failed)
	}
	return nil
}

// --- availability subcommand ---

var doctorsAvailabilityCmd = &cobra.Command{
	Use:   "availability <doctor-id> <on|off>",
	Short: "Toggle a doctor's availability flag",
	Args:  cobra.ExactArgs(2),
	RunE:  runDoctorsAvailability,
}

func runDoctorsAvailability(cmd *cobra.Command, args []string) error {
	var available bool
	switch args[1] {
	case "on":
		available = true
	case "off":
		available = false
	default:
		return fmt.Errorf("unsupported value %q: use on or off", args[1])
	}

	store, err := directory.Open(engineConfig().Directory)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetAvailability(context.Background(), args[0], available); err != nil {
		return err
	}
	fmt.Printf("Doctor %s availability set to %s\n", args[0], args[1])
	return nil
}

func init() {
	doctorsAddCmd.Flags().String("specialization", "", "medical specialization (required)")
	doctorsAddCmd.Flags().String("days", "", "declared working days, e.g. Mon,Tue,Wed")
	doctorsAddCmd.Flags().Bool("unavailable", false, "add the doctor as currently unavailable")

	doctorsListCmd.Flags().Bool("available", false, "only list currently available doctors")
	doctorsListCmd.Flags().Bool("json", false, "output as JSON")

	doctorsCmd.AddCommand(doctorsAddCmd)
	doctorsCmd.AddCommand(doctorsListCmd)
	doctorsCmd.AddCommand(doctorsImportCmd)
	doctorsCmd.AddCommand(doctorsAvailabilityCmd)

	rootCmd.AddCommand(doctorsCmd)
}
