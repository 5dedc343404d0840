// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package directory persists the doctor roster and their appointments
// in a local SQLite database. It implements the two narrow collaborator
// contracts the allocation engine consumes: listing doctors and
// counting appointments in a date range. Store failures propagate
// unchanged; the engine applies no retries or fallback data.
package directory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

const (
	dbFile = "medconnect.db"

	// dateLayout is the storage format for appointment days.
	dateLayout = "2006-01-02"
)

// Store manages the directory SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the directory database at dataDir/medconnect.db
// and bootstraps the schema.
func Open(cfg types.DirectoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS doctors (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			specialization TEXT NOT NULL,
			available_days TEXT,
			is_available INTEGER NOT NULL DEFAULT 1,
			is_active INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id TEXT PRIMARY KEY,
			doctor_id TEXT NOT NULL REFERENCES doctors(id),
			appointment_date TEXT NOT NULL,
			status TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_doctor
			ON appointments(doctor_id, appointment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_doctors_specialization
			ON doctors(specialization)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// AddDoctor inserts a doctor and returns the stored profile. A missing
// ID is assigned a fresh UUID.
func (s *Store) AddDoctor(ctx context.Context, doctor types.DoctorProfile) (types.DoctorProfile, error) {
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}
	if doctor.Name == "" {
		return types.DoctorProfile{}, fmt.Errorf("doctor name is required")
	}
	if doctor.Specialization == "" {
		return types.DoctorProfile{}, fmt.Errorf("doctor specialization is required")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO doctors (id, name, specialization, available_days, is_available, is_active)
		 VALUES (?, ?, ?, ?, ?, 1)`,
		doctor.ID, doctor.Name, doctor.Specialization, doctor.AvailableDays, doctor.IsAvailable,
	)
	if err != nil {
		return types.DoctorProfile{}, fmt.Errorf("inserting doctor: %w", err)
	}
	return doctor, nil
}

// SetAvailability toggles a doctor's is_available flag.
func (s *Store) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE doctors SET is_available = ? WHERE id = ?`, available, doctorID)
	if err != nil {
		return fmt.Errorf("updating availability: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating availability: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("doctor %s not found", doctorID)
	}
	return nil
}

// ListAvailable returns every active doctor currently flagged available,
// ordered by name then ID for deterministic output.
func (s *Store) ListAvailable(ctx context.Context) ([]types.DoctorProfile, error) {
	return s.listDoctors(ctx, `WHERE is_active = 1 AND is_available = 1`)
}

// ListActive returns every active doctor regardless of availability.
func (s *Store) ListActive(ctx context.Context) ([]types.DoctorProfile, error) {
	return s.listDoctors(ctx, `WHERE is_active = 1`)
}

func (s *Store) listDoctors(ctx context.Context, where string) ([]types.DoctorProfile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, specialization, available_days, is_available FROM doctors `+
			where+` ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying doctors: %w", err)
	}
	defer rows.Close()

	var doctors []types.DoctorProfile
	for rows.Next() {
		var d types.DoctorProfile
		var days sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &days, &d.IsAvailable); err != nil {
			return nil, fmt.Errorf("scanning doctor row: %w", err)
		}
		if days.Valid {
			d.AvailableDays = days.String
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

// Schedule books an appointment for a doctor. A missing ID is assigned
// a fresh UUID; a missing status defaults to scheduled.
func (s *Store) Schedule(ctx context.Context, appt types.Appointment) (types.Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.Status == "" {
		appt.Status = types.StatusScheduled
	}
	if appt.DoctorID == "" {
		return types.Appointment{}, fmt.Errorf("appointment doctor_id is required")
	}
	if appt.Date.IsZero() {
		return types.Appointment{}, fmt.Errorf("appointment date is required")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO appointments (id, doctor_id, appointment_date, status)
		 VALUES (?, ?, ?, ?)`,
		appt.ID, appt.DoctorID, appt.Date.Format(dateLayout), string(appt.Status),
	)
	if err != nil {
		return types.Appointment{}, fmt.Errorf("inserting appointment: %w", err)
	}
	return appt, nil
}

// CountInRange counts a doctor's appointments with a date inside
// [start, end] and a status among statuses.
func (s *Store) CountInRange(ctx context.Context, doctorID string, start, end time.Time, statuses []types.AppointmentStatus) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(statuses))
	placeholders = placeholders[:len(placeholders)-1]

	args := []any{doctorID, start.Format(dateLayout), end.Format(dateLayout)}
	for _, st := range statuses {
		args = append(args, string(st))
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM appointments
		 WHERE doctor_id = ? AND appointment_date >= ? AND appointment_date <= ?
		 AND status IN (`+placeholders+`)`, args...,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting appointments: %w", err)
	}
	return count, nil
}

// ListAppointments returns a doctor's appointments ordered by date.
// An empty doctorID lists all appointments.
func (s *Store) ListAppointments(ctx context.Context, doctorID string) ([]types.Appointment, error) {
	query := `SELECT id, doctor_id, appointment_date, status FROM appointments`
	var args []any
	if doctorID != "" {
		query += ` WHERE doctor_id = ?`
		args = append(args, doctorID)
	}
	query += ` ORDER BY appointment_date, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer rows.Close()

	var appts []types.Appointment
	for rows.Next() {
		var a types.Appointment
		var date, status string
		if err := rows.Scan(&a.ID, &a.DoctorID, &date, &status); err != nil {
			return nil, fmt.Errorf("scanning appointment row: %w", err)
		}
		a.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parsing appointment date %q: %w", date, err)
		}
		a.Status = types.AppointmentStatus(status)
		appts = append(appts, a)
	}
	return appts, rows.Err()
}
