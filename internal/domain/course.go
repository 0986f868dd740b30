package domain

import (
	"context"

	"study-planner-backend/pkg/gpa"
)

// Difficulty represents how demanding a course is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyKiller Difficulty = "Killer"
)

// IsValid checks if the difficulty is known
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyKiller:
		return true
	}
	return false
}

// Course is a next-semester course on the roadmap
type Course struct {
	Code       string     `json:"code" yaml:"code" validate:"required,course_code"`
	Name       string     `json:"name" yaml:"name"`
	Credits    int        `json:"credits" yaml:"credits" validate:"gt=0"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty" validate:"difficulty"`
	// TargetGrade seeds the planner's grade slider
	TargetGrade gpa.Letter `json:"target_grade" yaml:"target_grade"`
	// BaselineGrade is the minimum grade needed to stay on track
	BaselineGrade gpa.Letter `json:"baseline_grade" yaml:"baseline_grade"`
}

// NeedsReviewKit reports whether the course is hard enough to offer review material
func (c Course) NeedsReviewKit() bool {
	return c.Difficulty == DifficultyHard || c.Difficulty == DifficultyKiller
}

type CourseRepository interface {
	// FetchRoadmapCourses returns next semester's courses. The profile and target
	// school are accepted for future personalisation but do not affect the result.
	FetchRoadmapCourses(ctx context.Context, profile *StudentProfile, targetSchoolID string) ([]Course, error)
}
