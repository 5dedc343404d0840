// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

// seedDoctor is one doctor entry in a seed file, with optional
// appointments booked against it.
type seedDoctor struct {
	Name           string            `yaml:"name"`
	Specialization string            `yaml:"specialization"`
	AvailableDays  string            `yaml:"available_days"`
	IsAvailable    *bool             `yaml:"is_available"`
	Appointments   []seedAppointment `yaml:"appointments"`
}

type seedAppointment struct {
	Date   string                  `yaml:"date"`
	Status types.AppointmentStatus `yaml:"status"`
}

type seedFile struct {
	Doctors []seedDoctor `yaml:"doctors"`
}

// SeedSummary holds counts from a seed import run.
type SeedSummary struct {
	Doctors      int
	Appointments int
	Failed       int
}

// ImportSeed reads a YAML seed file and inserts its doctors and
// appointments in one transaction per doctor. Failed entries are
// reported on w and counted but do not abort the import.
func (s *Store) ImportSeed(ctx context.Context, path string, w io.Writer) (SeedSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedSummary{}, fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedSummary{}, fmt.Errorf("parsing seed file: %w", err)
	}

	var summary SeedSummary
	for _, sd := range seed.Doctors {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		n, err := s.seedOne(ctx, sd)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", sd.Name, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "added   %s (%s, %d appointments)\n", sd.Name, sd.Specialization, n)
		summary.Doctors++
		summary.Appointments += n
	}

	fmt.Fprintf(w, "\ndoctors: %d, appointments: %d, failed: %d\n",
		summary.Doctors, summary.Appointments, summary.Failed)
	return summary, nil
}

func (s *Store) seedOne(ctx context.Context, sd seedDoctor) (int, error) {
	if sd.Name == "" || sd.Specialization == "" {
		return 0, fmt.Errorf("name and specialization are required")
	}

	available := true
	if sd.IsAvailable != nil {
		available = *sd.IsAvailable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	doctorID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO doctors (id, name, specialization, available_days, is_available, is_active)
		 VALUES (?, ?, ?, ?, ?, 1)`,
		doctorID, sd.Name, sd.Specialization, sd.AvailableDays, available,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting doctor: %w", err)
	}

	for _, sa := range sd.Appointments {
		date, err := time.Parse(dateLayout, sa.Date)
		if err != nil {
			return 0, fmt.Errorf("appointment date %q: %w", sa.Date, err)
		}
		status := sa.Status
		if status == "" {
			status = types.StatusScheduled
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO appointments (id, doctor_id, appointment_date, status)
			 VALUES (?, ?, ?, ?)`,
			uuid.NewString(), doctorID, date.Format(dateLayout), string(status),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting appointment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(sd.Appointments), nil
}
