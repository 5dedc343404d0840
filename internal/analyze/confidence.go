// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "math"

// Weights for the four confidence factors. They sum to 1.
const (
	meanWeight        = 0.40
	consistencyWeight = 0.25
	qualityWeight     = 0.20
	marginWeight      = 0.15

	// qualityMinSimilarity is the similarity a match needs to count as
	// a quality match.
	qualityMinSimilarity = 0.2
)

// confidenceScore combines four signals from the ranked similarities
// into one calibrated [0,1] score, rounded to two decimals. Only the
// top three similarities feed the factors:
//
//   - mean: overall match strength;
//   - consistency: 1 − stddev, low spread means agreeing matches;
//   - quality: fraction of the top three above 0.2;
//   - margin: gap between the best and second match, a large gap means
//     a confident single winner.
//
// The weighted sum is capped at 1.2× the strongest raw similarity so
// confidence cannot wildly exceed the underlying signal, and floored at
// 0.3 when there is a decent primary match.
func confidenceScore(similarities []float64) float64 {
	if len(similarities) == 0 {
		// Degenerate candidate list; callers short-circuit to the
		// no-match confidence before reaching here.
		return 0
	}

	top := similarities
	if len(top) > 3 {
		top = top[:3]
	}
	top1 := top[0]

	var sum float64
	for _, s := range top {
		sum += s
	}
	mean := sum / float64(len(top))

	var variance float64
	for _, s := range top {
		d := s - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(top)))
	consistency := 1.0 - math.Min(stddev, 1.0)

	quality := 0
	for _, s := range top {
		if s > qualityMinSimilarity {
			quality++
		}
	}
	qualityFactor := math.Min(float64(quality)/3.0, 1.0)

	margin := 0.5
	if len(top) >= 2 {
		margin = math.Min(top[0]-top[1], 1.0)
	}

	confidence := mean*meanWeight +
		consistency*consistencyWeight +
		qualityFactor*qualityWeight +
		margin*marginWeight

	confidence = math.Min(confidence, math.Min(top1*1.2, 1.0))
	if top1 > 0.3 {
		confidence = math.Max(confidence, 0.3)
	}

	return round2(math.Max(0, math.Min(1, confidence)))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
