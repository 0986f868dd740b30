package usecase

import (
	"context"
	"math"
	"strings"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/gpa"
	"study-planner-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type plannerUsecase struct {
	repo     domain.CourseRepository
	validate *validator.Validate
}

func NewPlannerUsecase(repo domain.CourseRepository, validate *validator.Validate) domain.PlannerUsecase {
	return &plannerUsecase{
		repo:     repo,
		validate: validate,
	}
}

// LoadRoadmap fetches next semester's courses and seeds each grade with its target grade
func (u *plannerUsecase) LoadRoadmap(ctx context.Context, profile *domain.StudentProfile, targetSchoolID string) (*domain.RoadmapResult, error) {
	if targetSchoolID == "" {
		targetSchoolID = domain.DefaultTargetSchoolID
	}

	courses, err := u.fetchCourses(ctx, profile, targetSchoolID)
	if err != nil {
		return nil, err
	}

	grades := InitialGrades(courses)
	return &domain.RoadmapResult{
		TargetSchoolID: targetSchoolID,
		Courses:        planCourses(courses, grades),
		Grades:         grades,
		TotalCredits:   totalCredits(courses),
	}, nil
}

func (u *plannerUsecase) fetchCourses(ctx context.Context, profile *domain.StudentProfile, targetSchoolID string) ([]domain.Course, error) {
	courses, err := u.repo.FetchRoadmapCourses(ctx, profile, targetSchoolID)
	if err != nil {
		return nil, repoFailure("Failed to fetch courses", err, "target_school", targetSchoolID)
	}
	return courses, nil
}

// InitialGrades maps each course code to the points of its target grade, or 3.0
// when the target grade is unknown.
func InitialGrades(courses []domain.Course) map[string]float64 {
	grades := make(map[string]float64, len(courses))
	for _, c := range courses {
		grades[c.Code] = defaultGradePoints(c)
	}
	return grades
}

func defaultGradePoints(c domain.Course) float64 {
	if pts, ok := gpa.PointsFor(c.TargetGrade); ok {
		return pts
	}
	return domain.FallbackCourseGradePts
}

func planCourses(courses []domain.Course, grades map[string]float64) []domain.PlannedCourse {
	planned := make([]domain.PlannedCourse, len(courses))
	for i, c := range courses {
		pts, ok := grades[c.Code]
		if !ok {
			pts = domain.FallbackCourseGradePts
		}
		planned[i] = domain.PlannedCourse{
			Course:         c,
			GradePoint:     pts,
			GradeLetter:    gpa.LetterFor(pts),
			NeedsReviewKit: c.NeedsReviewKit(),
		}
	}
	return planned
}

func totalCredits(courses []domain.Course) int {
	total := 0
	for _, c := range courses {
		total += c.Credits
	}
	return total
}

// ============================================================================
// Simulation
// ============================================================================

func (u *plannerUsecase) Simulate(ctx context.Context, req *domain.SimulationRequest) (*domain.SimulationResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	courses := req.Courses
	if len(courses) == 0 {
		var err error
		courses, err = u.fetchCourses(ctx, nil, domain.DefaultTargetSchoolID)
		if err != nil {
			return nil, err
		}
	}

	return BuildSimulation(req, courses), nil
}

// BuildSimulation projects the GPA after the planned courses. Grades missing from the
// request fall back to the course's target grade.
func BuildSimulation(req *domain.SimulationRequest, courses []domain.Course) *domain.SimulationResult {
	current := domain.DefaultCurrentGPA
	if req.CurrentGPA != nil {
		current = *req.CurrentGPA
	}
	past := domain.DefaultPastCredits
	if req.PastCredits != nil {
		past = *req.PastCredits
	}
	target := domain.DefaultTargetGPA
	if req.TargetGPA != nil {
		target = *req.TargetGPA
	}
	school := req.TargetSchool
	if school == "" {
		school = domain.DefaultTargetSchool
	}

	grades := InitialGrades(courses)
	for code, pts := range req.Grades {
		if _, ok := grades[code]; ok {
			grades[code] = pts
		}
	}

	planned := planCourses(courses, grades)
	loads := make([]gpa.CourseLoad, len(planned))
	for i, p := range planned {
		loads[i] = gpa.CourseLoad{Credits: p.Credits, GradePoint: p.GradePoint}
	}
	simulated := gpa.Simulate(current, past, loads)

	result := &domain.SimulationResult{
		TargetSchool:    school,
		CurrentGPA:      current,
		PastCredits:     past,
		TargetGPA:       target,
		SimulatedGPA:    simulated,
		Display:         gpa.Format(simulated),
		TotalNewCredits: gpa.TotalCredits(loads),
		CurrentGap:      round2(target - current),
		Feasible:        simulated >= target,
		Courses:         planned,
	}
	if !result.Feasible {
		result.RemainingGap = round2(target - simulated)
	}
	result.Context = PlannerSummary(result)
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
