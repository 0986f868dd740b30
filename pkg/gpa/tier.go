package gpa

import "math"

// Tier is the admission outlook for a school relative to a student's GPA
type Tier string

const (
	TierReach  Tier = "Reach"
	TierMatch  Tier = "Match"
	TierSafety Tier = "Safety"
)

// MatchBand is the GPA distance from a school's minimum within which the school counts as a Match.
const MatchBand = 0.2

// IsValid checks if the tier is one of the known tiers
func (t Tier) IsValid() bool {
	switch t {
	case TierReach, TierMatch, TierSafety:
		return true
	}
	return false
}

// Classify bands a student GPA against a school's minimum requirement.
// A delta of exactly ±0.2 is a Match. The delta is rounded to 1e-9 first, so
// float noise such as 3.4-3.6 = -0.20000000000000018 still counts as exact;
// a real difference below 1e-9 is treated as zero. Inputs are not clamped.
func Classify(studentGPA, minGpaReq float64) Tier {
	delta := roundDelta(studentGPA - minGpaReq)
	switch {
	case delta < -MatchBand:
		return TierReach
	case delta > MatchBand:
		return TierSafety
	default:
		return TierMatch
	}
}

// roundDelta drops float noise below 1e-9 so 3.4-3.6 compares equal to -0.2.
func roundDelta(d float64) float64 {
	return math.Round(d*1e9) / 1e9
}
