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

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Manage appointments (book, list)",
}

// --- book subcommand ---

var appointmentsBookCmd = &cobra.Command{
	Use:   "book <doctor-id> <date>",
	Short: "Book an appointment with a doctor",
	Long: `Book inserts an appointment for the given doctor on the given day
(YYYY-MM-DD). Scheduled and confirmed appointments count toward the
doctor's workload during allocation.`,
	Args: cobra.ExactArgs(2),
	RunE: runAppointmentsBook,
}

func runAppointmentsBook(cmd *cobra.Command, args []string) error {
	statusStr, _ := cmd.Flags().GetString("status")

	date, err := parseDateFlag(args[1])
	if err != nil {
		return err
	}

	status := types.AppointmentStatus(statusStr)
	switch status {
	case types.StatusPending, types.StatusScheduled, types.StatusConfirmed,
		types.StatusCompleted, types.StatusCancelled:
	default:
		return fmt.Errorf("unsupported status %q", statusStr)
	}

	store, err := directory.Open(engineConfig().Directory)
	if err != nil {
		return err
	}
	defer store.Close()

	appt, err := store.Schedule(context.Background(), types.Appointment{
		DoctorID: args[0],
		Date:     date,
		Status:   status,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Booked %s with doctor %s on %s (%s)\n",
		appt.ID, appt.DoctorID, appt.Date.Format("2006-01-02"), appt.Status)
	return nil
}

// --- list subcommand ---

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments, optionally for one doctor",
	RunE:  runAppointmentsList,
}

func runAppointmentsList(cmd *cobra.Command, args []string) error {
	doctorID, _ := cmd.Flags().GetString("doctor")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := directory.Open(engineConfig().Directory)
	if err != nil {
		return err
	}
	defer store.Close()

	appts, err := store.ListAppointments(context.Background(), doctorID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(appts)
	}

	if len(appts) == 0 {
		fmt.Println("No appointments.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-36s  %-12s  %s\n", "ID", "Doctor", "Date", "Status")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))
	for _, a := range appts {
		fmt.Fprintf(os.Stdout, "%-36s  %-36s  %-12s  %s\n",
			a.ID, a.DoctorID, a.Date.Format("2006-01-02"), a.Status)
	}

	fmt.Fprintf(os.Stdout, "\n%d appointments\n", len(appts))
	return nil
}

func init() {
	appointmentsBookCmd.Flags().String("status", "scheduled", "appointment status: pending, scheduled, confirmed, completed, cancelled")

	appointmentsListCmd.Flags().String("doctor", "", "filter by doctor ID")
	appointmentsListCmd.Flags().Bool("json", false, "output as JSON")

	appointmentsCmd.AddCommand(appointmentsBookCmd)
	appointmentsCmd.AddCommand(appointmentsListCmd)

	rootCmd.AddCommand(appointmentsCmd)
}
