// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package allocate

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

// maxAlternatives caps the runner-up doctors attached to a result.
const maxAlternatives = 2

// Allocate ranks every available doctor for the required specialization
// and returns the best fit plus up to two alternatives. The result
// carries a nil Doctor and an explanatory Reason when no doctor can be
// allocated; only collaborator failures return an error.
func (a *Allocator) Allocate(ctx context.Context, requiredSpec string, preferredDate time.Time) (types.AllocationResult, error) {
	doctors, err := a.directory.ListAvailable(ctx)
	if err != nil {
		return types.AllocationResult{}, fmt.Errorf("listing available doctors: %w", err)
	}
	if len(doctors) == 0 {
		return types.AllocationResult{Reason: "No doctors currently available"}, nil
	}

	window := types.NewWorkloadWindow(preferredDate, a.windowDays)

	scores := make([]types.AllocationScore, 0, len(doctors))
	for _, doctor := range doctors {
		score, err := a.Score(ctx, doctor, requiredSpec, window)
		if err != nil {
			return types.AllocationResult{}, fmt.Errorf("scoring doctor %s: %w", doctor.ID, err)
		}
		scores = append(scores, score)
	}

	// Equal totals tie-break on doctor ID so repeated calls against
	// unchanged data allocate the same doctor.
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		return scores[i].Doctor.ID < scores[j].Doctor.ID
	})

	best := scores[0]
	if best.Total <= 0 {
		return types.AllocationResult{Reason: "No suitable doctor found for the required specialization"}, nil
	}

	var alternatives []types.AllocationAlternative
	for _, s := range scores[1:] {
		if len(alternatives) == maxAlternatives {
			break
		}
		alternatives = append(alternatives, types.AllocationAlternative{
			Doctor:   s.Doctor,
			Score:    round2(s.Total),
			Workload: s.Workload,
		})
	}

	doctor := best.Doctor
	return types.AllocationResult{
		Doctor:       &doctor,
		Score:        round2(best.Total),
		Workload:     best.Workload,
		Reason:       a.allocationReason(best, requiredSpec),
		Alternatives: alternatives,
	}, nil
}

// allocationReason builds the human-readable explanation attached to an
// allocation: the match kind plus an availability qualifier tier.
func (a *Allocator) allocationReason(best types.AllocationScore, requiredSpec string) string {
	var reasons []string

	if normalizeSpec(best.Doctor.Specialization) == normalizeSpec(requiredSpec) {
		reasons = append(reasons, fmt.Sprintf("Exact specialization match (%s)", best.Doctor.Specialization))
	} else {
		reasons = append(reasons, fmt.Sprintf("Available specialist in %s", best.Doctor.Specialization))
	}

	switch {
	case best.Total > 0.8:
		reasons = append(reasons, "Optimal availability and low workload")
	case best.Total > 0.6:
		reasons = append(reasons, "Good availability")
	default:
		reasons = append(reasons, "Available for consultation")
	}

	return strings.Join(reasons, " | ")
}

// WorkloadAnalytics aggregates the upcoming workload of every active
// doctor over the reporting window. A zero referenceDate means today.
func (a *Allocator) WorkloadAnalytics(ctx context.Context, referenceDate time.Time) ([]types.WorkloadEntry, error) {
	doctors, err := a.directory.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active doctors: %w", err)
	}

	window := types.NewWorkloadWindow(referenceDate, a.windowDays)

	entries := make([]types.WorkloadEntry, 0, len(doctors))
	for _, doctor := range doctors {
		workload, err := a.appointments.CountInRange(ctx, doctor.ID, window.Start, window.End, types.ActiveStatuses)
		if err != nil {
			return nil, fmt.Errorf("counting appointments for doctor %s: %w", doctor.ID, err)
		}

		status := types.WorkloadHigh
		switch {
		case workload <= lowWorkloadMax:
			status = types.WorkloadLow
		case workload <= moderateWorkloadMax:
			status = types.WorkloadModerate
		}

		entries = append(entries, types.WorkloadEntry{
			Doctor:          doctor,
			Workload:        workload,
			Status:          status,
			UtilizationRate: math.Min(float64(workload)/weeklyCapacity*100, 100),
		})
	}
	return entries, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
