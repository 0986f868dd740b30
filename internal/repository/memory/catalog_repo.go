package memory

import (
	"context"
	"embed"
	"fmt"
	"time"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/latency"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Latency of each simulated backend call
type Latency struct {
	Universities time.Duration
	Courses      time.Duration
	SaveProfile  time.Duration
}

// DefaultLatency matches the delays of the original mock API
func DefaultLatency() Latency {
	return Latency{
		Universities: 1000 * time.Millisecond,
		Courses:      1200 * time.Millisecond,
		SaveProfile:  800 * time.Millisecond,
	}
}

// CatalogRepository serves the embedded mock catalog. It implements the
// university, course and profile repositories.
type CatalogRepository struct {
	universities []domain.University
	courses      []domain.Course
	latency      Latency
}

// NewCatalogRepository parses the embedded fixtures. A zero Latency disables the delays.
func NewCatalogRepository(delays Latency) (*CatalogRepository, error) {
	var universities []domain.University
	if err := loadFixture("fixtures/universities.yaml", &universities); err != nil {
		return nil, err
	}

	var courses []domain.Course
	if err := loadFixture("fixtures/courses.yaml", &courses); err != nil {
		return nil, err
	}

	return &CatalogRepository{
		universities: universities,
		courses:      courses,
		latency:      delays,
	}, nil
}

func loadFixture(name string, out interface{}) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

func (r *CatalogRepository) FetchUniversities(ctx context.Context, profile *domain.StudentProfile) ([]domain.University, error) {
	if err := latency.Wait(ctx, r.latency.Universities); err != nil {
		return nil, err
	}

	// Filtering by target country and re-ranking by GPA belongs to a real backend
	out := make([]domain.University, len(r.universities))
	for i, u := range r.universities {
		out[i] = u
		out[i].Tags = append([]string(nil), u.Tags...)
	}
	return out, nil
}

func (r *CatalogRepository) FetchRoadmapCourses(ctx context.Context, profile *domain.StudentProfile, targetSchoolID string) ([]domain.Course, error) {
	if err := latency.Wait(ctx, r.latency.Courses); err != nil {
		return nil, err
	}

	out := make([]domain.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

// SaveProfile pretends to store the profile and echoes it back
func (r *CatalogRepository) SaveProfile(ctx context.Context, profile *domain.StudentProfile) (*domain.StudentProfile, error) {
	if err := latency.Wait(ctx, r.latency.SaveProfile); err != nil {
		return nil, err
	}

	saved := *profile
	saved.TargetCountries = append([]string(nil), profile.TargetCountries...)
	return &saved, nil
}
