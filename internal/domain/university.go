package domain

import (
	"context"

	"study-planner-backend/pkg/gpa"
)

// University is static reference data for the session
type University struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Location  string   `json:"location" yaml:"location"`
	LogoURL   string   `json:"logo_url" yaml:"logo_url"`
	MinGpaReq float64  `json:"min_gpa_req" yaml:"min_gpa_req"`
	Tags      []string `json:"tags" yaml:"tags"`
	// Tier assigned in the catalog for a typical 3.4 GPA applicant
	MatchProbability gpa.Tier `json:"match_probability" yaml:"match_probability"`
}

// MatchedUniversity is a University annotated with the tier computed for the current GPA
type MatchedUniversity struct {
	University
	DynamicMatch gpa.Tier `json:"dynamic_match"`
}

type UniversityRepository interface {
	// FetchUniversities returns the catalog. The profile is accepted for future
	// filtering but does not affect the result.
	FetchUniversities(ctx context.Context, profile *StudentProfile) ([]University, error)
}
