// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ActiveStatuses are the appointment states that count toward a doctor's
// forward-looking workload.
var ActiveStatuses = []AppointmentStatus{StatusScheduled, StatusConfirmed}

// DoctorProfile is the read-only view of a doctor used for allocation.
type DoctorProfile struct {
	// ID uniquely identifies the doctor in the directory.
	ID string `json:"id" yaml:"id"`

	// Name is the doctor's display name.
	Name string `json:"name" yaml:"name"`

	// Specialization is the doctor's field of practice.
	Specialization string `json:"specialization" yaml:"specialization"`

	// AvailableDays records declared working days (e.g. "Mon,Tue,Wed").
	// Stored for display only; scoring uses the IsAvailable flag.
	AvailableDays string `json:"available_days,omitempty" yaml:"available_days,omitempty"`

	// IsAvailable indicates whether the doctor currently accepts
	// appointments.
	IsAvailable bool `json:"is_available" yaml:"is_available"`
}

// Appointment is one booked slot against a doctor.
type Appointment struct {
	// ID uniquely identifies the appointment.
	ID string `json:"id" yaml:"id"`

	// DoctorID references the doctor the slot is booked with.
	DoctorID string `json:"doctor_id" yaml:"doctor_id"`

	// Date is the appointment day.
	Date time.Time `json:"date" yaml:"date"`

	// Status is the appointment lifecycle state.
	Status AppointmentStatus `json:"status" yaml:"status"`
}

// WorkloadWindow is the forward-looking date range over which upcoming
// appointments are counted.
type WorkloadWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// NewWorkloadWindow builds a window of the given length starting at ref.
// A zero ref means today.
func NewWorkloadWindow(ref time.Time, days int) WorkloadWindow {
	if ref.IsZero() {
		ref = time.Now()
	}
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return WorkloadWindow{Start: start, End: start.AddDate(0, 0, days)}
}

// AllocationScore is the per-doctor factor breakdown behind a ranking.
type AllocationScore struct {
	Doctor DoctorProfile `json:"doctor" yaml:"doctor"`

	// SpecializationScore reflects how well the doctor's field matches
	// the requirement: 1.0 exact, 0.5 related, 0.3 general fallback,
	// 0.1 otherwise.
	SpecializationScore float64 `json:"specialization_score" yaml:"specialization_score"`

	// WorkloadScore rewards lightly loaded doctors.
	WorkloadScore float64 `json:"workload_score" yaml:"workload_score"`

	// AvailabilityScore is 1.0 when the doctor is flagged available.
	AvailabilityScore float64 `json:"availability_score" yaml:"availability_score"`

	// Workload is the upcoming appointment count inside the window.
	Workload int `json:"workload" yaml:"workload"`

	// Total is the weighted combination of the three factors, in [0,1].
	Total float64 `json:"total" yaml:"total"`
}

// AllocationAlternative is a runner-up doctor attached to an allocation.
type AllocationAlternative struct {
	Doctor   DoctorProfile `json:"doctor" yaml:"doctor"`
	Score    float64       `json:"score" yaml:"score"`
	Workload int           `json:"workload" yaml:"workload"`
}

// AllocationResult is the outcome of a doctor-allocation request.
// Doctor is nil when no doctor could be allocated; Reason always
// explains the outcome either way.
type AllocationResult struct {
	Doctor       *DoctorProfile          `json:"doctor,omitempty" yaml:"doctor,omitempty"`
	Score        float64                 `json:"score" yaml:"score"`
	Workload     int                     `json:"workload" yaml:"workload"`
	Reason       string                  `json:"reason" yaml:"reason"`
	Alternatives []AllocationAlternative `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// WorkloadStatus buckets a doctor's upcoming workload for reporting.
type WorkloadStatus string

const (
	WorkloadLow      WorkloadStatus = "Low"
	WorkloadModerate WorkloadStatus = "Moderate"
	WorkloadHigh     WorkloadStatus = "High"
)

// WorkloadEntry is one row of the fleet-wide workload report.
type WorkloadEntry struct {
	Doctor DoctorProfile `json:"doctor" yaml:"doctor"`

	// Workload is the appointment count in the reporting window.
	Workload int `json:"workload" yaml:"workload"`

	// Status is the workload bucket: Low ≤5, Moderate ≤10, else High.
	Status WorkloadStatus `json:"status" yaml:"status"`

	// UtilizationRate is workload as a percentage of the assumed
	// weekly capacity of 15 appointments, capped at 100.
	UtilizationRate float64 `json:"utilization_rate" yaml:"utilization_rate"`
}
