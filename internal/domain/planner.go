package domain

import (
	"context"

	"study-planner-backend/pkg/gpa"
)

// Planner defaults for the demo student
const (
	DefaultCurrentGPA      = 3.4
	DefaultPastCredits     = 90
	DefaultTargetGPA       = 3.7
	DefaultTargetSchoolID  = "nyu"
	DefaultTargetSchool    = "纽约大学 (NYU)"
	FallbackCourseGradePts = 3.0
)

// PlannedCourse is a roadmap course with the grade the student is aiming for
type PlannedCourse struct {
	Course
	GradePoint     float64    `json:"grade_point"`
	GradeLetter    gpa.Letter `json:"grade_letter"`
	NeedsReviewKit bool       `json:"needs_review_kit"`
}

// RoadmapResult is the planner's initial state
type RoadmapResult struct {
	TargetSchoolID string             `json:"target_school_id"`
	Courses        []PlannedCourse    `json:"courses"`
	Grades         map[string]float64 `json:"grades"`
	TotalCredits   int                `json:"total_credits"`
}

// SimulationRequest describes a what-if grade plan. Omitted fields take the demo defaults;
// omitted courses are loaded from the roadmap.
type SimulationRequest struct {
	CurrentGPA   *float64           `json:"current_gpa,omitempty" validate:"omitempty,gpa_scale"`
	PastCredits  *int               `json:"past_credits,omitempty" validate:"omitempty,min=0"`
	TargetGPA    *float64           `json:"target_gpa,omitempty" validate:"omitempty,gpa_scale"`
	TargetSchool string             `json:"target_school,omitempty" validate:"max=100,no_emoji"`
	Courses      []Course           `json:"courses,omitempty" validate:"dive"`
	Grades       map[string]float64 `json:"grades" validate:"dive,gpa_scale"`
}

// SimulationResult is the projected outcome of a grade plan
type SimulationResult struct {
	TargetSchool    string          `json:"target_school"`
	CurrentGPA      float64         `json:"current_gpa"`
	PastCredits     int             `json:"past_credits"`
	TargetGPA       float64         `json:"target_gpa"`
	SimulatedGPA    float64         `json:"simulated_gpa"`
	Display         string          `json:"display"`
	TotalNewCredits int             `json:"total_new_credits"`
	CurrentGap      float64         `json:"current_gap"`
	RemainingGap    float64         `json:"remaining_gap"`
	Feasible        bool            `json:"feasible"`
	Courses         []PlannedCourse `json:"courses"`
	Context         string          `json:"context"`
}

type PlannerUsecase interface {
	LoadRoadmap(ctx context.Context, profile *StudentProfile, targetSchoolID string) (*RoadmapResult, error)
	Simulate(ctx context.Context, req *SimulationRequest) (*SimulationResult, error)
	Export(ctx context.Context, req *SimulationRequest) ([]byte, string, error)
}
