// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package allocate ranks candidate doctors for a required
// specialization by combining specialization fit, forward-looking
// workload, and availability, and aggregates fleet-wide workload for
// reporting. It is a heuristic ranking with load-balancing behavior,
// not an exact solver.
package allocate

import (
	"context"
	"strings"
	"time"

	"github.com/cibinnnnnn/medconnect/internal/knowledge"
	"github.com/cibinnnnnn/medconnect/pkg/types"
)

// Factor weights for the total allocation score. They sum to 1.
const (
	specializationWeight = 0.4
	workloadWeight       = 0.4
	availabilityWeight   = 0.2
)

// Specialization fit tiers.
const (
	exactMatchScore      = 1.0
	relatedMatchScore    = 0.5
	generalFallbackScore = 0.3
	noMatchScore         = 0.1
)

// Workload step thresholds and the assumed weekly capacity. These are
// deliberately fixed; only the window length is configurable.
const (
	lowWorkloadMax      = 5
	moderateWorkloadMax = 10
	highWorkloadMax     = 15
	weeklyCapacity      = 15
)

// DoctorDirectory lists doctors. Owned by the surrounding platform;
// the engine only reads from it.
type DoctorDirectory interface {
	ListAvailable(ctx context.Context) ([]types.DoctorProfile, error)
	ListActive(ctx context.Context) ([]types.DoctorProfile, error)
}

// AppointmentCounter counts a doctor's appointments in a date range.
type AppointmentCounter interface {
	CountInRange(ctx context.Context, doctorID string, start, end time.Time, statuses []types.AppointmentStatus) (int, error)
}

// Allocator scores and ranks doctors against the directory and
// appointment store. Stateless per call.
type Allocator struct {
	directory    DoctorDirectory
	appointments AppointmentCounter
	base         *knowledge.Base
	windowDays   int
}

// New builds an Allocator. A non-positive WindowDays falls back to the
// default 7-day window.
func New(dir DoctorDirectory, appts AppointmentCounter, base *knowledge.Base, cfg types.AllocationConfig) *Allocator {
	days := cfg.WindowDays
	if days <= 0 {
		days = 7
	}
	return &Allocator{
		directory:    dir,
		appointments: appts,
		base:         base,
		windowDays:   days,
	}
}

// Score computes the multi-factor allocation score for one doctor.
func (a *Allocator) Score(ctx context.Context, doctor types.DoctorProfile, requiredSpec string, window types.WorkloadWindow) (types.AllocationScore, error) {
	workload, err := a.appointments.CountInRange(ctx, doctor.ID, window.Start, window.End, types.ActiveStatuses)
	if err != nil {
		return types.AllocationScore{}, err
	}

	specScore := a.specializationScore(doctor.Specialization, requiredSpec)
	workloadScore := workloadScore(workload)
	availabilityScore := 0.0
	if doctor.IsAvailable {
		availabilityScore = 1.0
	}

	return types.AllocationScore{
		Doctor:              doctor,
		SpecializationScore: specScore,
		WorkloadScore:       workloadScore,
		AvailabilityScore:   availabilityScore,
		Workload:            workload,
		Total: specScore*specializationWeight +
			workloadScore*workloadWeight +
			availabilityScore*availabilityWeight,
	}, nil
}

// specializationScore grades how well a doctor's field matches the
// requirement: exact, related per the knowledge base table, general
// medicine as a universal fallback, or minimal.
func (a *Allocator) specializationScore(doctorSpec, requiredSpec string) float64 {
	doctorSpec = normalizeSpec(doctorSpec)
	requiredSpec = normalizeSpec(requiredSpec)

	switch {
	case doctorSpec == requiredSpec:
		return exactMatchScore
	case a.base.IsRelated(requiredSpec, doctorSpec):
		return relatedMatchScore
	case doctorSpec == knowledge.FallbackSpecialization:
		return generalFallbackScore
	default:
		return noMatchScore
	}
}

// workloadScore converts an appointment count into a score; lower
// workload scores higher so allocation balances load across the fleet.
func workloadScore(workload int) float64 {
	switch {
	case workload <= lowWorkloadMax:
		return 1.0
	case workload <= moderateWorkloadMax:
		return 0.7
	case workload <= highWorkloadMax:
		return 0.4
	default:
		return 0.2
	}
}

// normalizeSpec case/format-normalizes a specialization name so
// "General Medicine" and "general_medicine" compare equal.
func normalizeSpec(spec string) string {
	return strings.ReplaceAll(strings.ToLower(spec), " ", "_")
}
