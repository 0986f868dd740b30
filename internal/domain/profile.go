package domain

import (
	"context"
	"time"
)

// ============================================================================
// Major (Wizard Step 1)
// ============================================================================

// Major represents a UIC/BNBU programme code
type Major string

const (
	MajorFinance       Major = "FIN"
	MajorAccounting    Major = "ACCT"
	MajorCreativeComms Major = "CTV"
	MajorStatistics    Major = "STAT"
	MajorFinancialMath Major = "FM"
	MajorDataScience   Major = "DS"
)

// MajorOption is a selectable major with its display label
type MajorOption struct {
	Value Major  `json:"value"`
	Label string `json:"label"`
}

var majorOptions = []MajorOption{
	{MajorFinance, "金融学 (FIN)"},
	{MajorAccounting, "会计学 (ACCT)"},
	{MajorCreativeComms, "文化创意与传播 (CTV)"},
	{MajorStatistics, "统计学 (STAT)"},
	{MajorFinancialMath, "金融数学 (FM)"},
	{MajorDataScience, "数据科学 (DS)"},
}

// MajorOptions returns all selectable majors in display order
func MajorOptions() []MajorOption {
	out := make([]MajorOption, len(majorOptions))
	copy(out, majorOptions)
	return out
}

// IsValid checks if the major code is known
func (m Major) IsValid() bool {
	for _, opt := range majorOptions {
		if opt.Value == m {
			return true
		}
	}
	return false
}

// Label returns the display label, or the raw code when unknown
func (m Major) Label() string {
	for _, opt := range majorOptions {
		if opt.Value == m {
			return opt.Label
		}
	}
	return string(m)
}

// ============================================================================
// Target Countries (Wizard Step 3)
// ============================================================================

var countryOptions = []string{"USA", "UK", "Hong Kong", "Singapore", "Australia"}

// CountryOptions returns the supported destination countries/regions
func CountryOptions() []string {
	out := make([]string, len(countryOptions))
	copy(out, countryOptions)
	return out
}

// IsValidCountry checks if a destination is supported
func IsValidCountry(country string) bool {
	for _, c := range countryOptions {
		if c == country {
			return true
		}
	}
	return false
}

// ============================================================================
// Student Profile
// ============================================================================

// StudentProfile is the wizard's working state. It is never persisted.
type StudentProfile struct {
	GPA             float64  `json:"gpa" validate:"gpa_scale"`
	Major           Major    `json:"major" validate:"required,major_code"`
	TargetCountries []string `json:"target_countries" validate:"dive,country"`
	DreamSchoolID   *string  `json:"dream_school_id,omitempty"`
}

// InitialProfile is the demo profile: a 3.4 GPA finance student aiming for the US and UK
func InitialProfile() StudentProfile {
	dream := "nyu"
	return StudentProfile{
		GPA:             3.4,
		Major:           MajorFinance,
		TargetCountries: []string{"USA", "UK"},
		DreamSchoolID:   &dream,
	}
}

// ProfileRepository stands in for the profile backend
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile *StudentProfile) (*StudentProfile, error)
}

// ProfileUpdateResult is returned after a profile save
type ProfileUpdateResult struct {
	Profile StudentProfile `json:"profile"`
	SavedAt time.Time      `json:"saved_at"`
}

type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, profile *StudentProfile) (*ProfileUpdateResult, error)
}
