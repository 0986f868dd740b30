package domain

import (
	"context"

	"study-planner-backend/pkg/gpa"
)

// Bootstrap is everything the app shell needs on first paint
type Bootstrap struct {
	Profile      StudentProfile      `json:"profile"`
	Options      ConsultantOptions   `json:"options"`
	GradeScale   []gpa.GradePoint    `json:"grade_scale"`
	Universities []MatchedUniversity `json:"universities"`
	Roadmap      *RoadmapResult      `json:"roadmap"`
}

type BootstrapUsecase interface {
	Load(ctx context.Context) (*Bootstrap, error)
}
