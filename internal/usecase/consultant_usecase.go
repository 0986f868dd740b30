package usecase

import (
	"context"
	"strings"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/gpa"
	"study-planner-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type consultantUsecase struct {
	repo     domain.UniversityRepository
	validate *validator.Validate
}

func NewConsultantUsecase(repo domain.UniversityRepository, validate *validator.Validate) domain.ConsultantUsecase {
	return &consultantUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *consultantUsecase) Options() domain.ConsultantOptions {
	return domain.ConsultantOptions{
		Majors:    domain.MajorOptions(),
		Countries: domain.CountryOptions(),
	}
}

// ============================================================================
// Wizard
// ============================================================================

func (u *consultantUsecase) ValidateStep(ctx context.Context, req *domain.WizardValidateRequest) (*domain.WizardValidateResult, error) {
	if !req.Step.IsValid() {
		return nil, apperror.BadRequest("Unknown wizard step: " + string(req.Step))
	}

	ok := CanProceed(req.Step, &req.Profile)
	next := req.Step
	if ok {
		next = req.Step.Next()
	}

	return &domain.WizardValidateResult{CanProceed: ok, NextStep: next}, nil
}

// CanProceed reports whether the wizard may leave step with the given profile
func CanProceed(step domain.WizardStep, profile *domain.StudentProfile) bool {
	switch step {
	case domain.StepMajor:
		return profile.Major.IsValid()
	case domain.StepGPA:
		return profile.GPA >= validation.MinGPA && profile.GPA <= validation.MaxGPA
	case domain.StepCountry:
		return len(profile.TargetCountries) > 0
	default:
		return false
	}
}

// ============================================================================
// Strategy Map
// ============================================================================

func (u *consultantUsecase) LoadUniversities(ctx context.Context, profile *domain.StudentProfile) (*domain.ConsultantResult, error) {
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	universities, err := u.repo.FetchUniversities(ctx, profile)
	if err != nil {
		return nil, repoFailure("Failed to fetch universities", err)
	}

	matched := ClassifyUniversities(profile.GPA, universities)
	return &domain.ConsultantResult{
		Universities: matched,
		Context:      ConsultantSummary(domain.StepFinished, *profile, len(matched)),
	}, nil
}

func (u *consultantUsecase) Match(ctx context.Context, req *domain.MatchRequest) ([]domain.MatchedUniversity, error) {
	universities := req.Universities
	if len(universities) == 0 {
		var err error
		universities, err = u.repo.FetchUniversities(ctx, nil)
		if err != nil {
			return nil, repoFailure("Failed to fetch universities", err)
		}
	}

	return ClassifyUniversities(req.GPA, universities), nil
}

func (u *consultantUsecase) Summarize(req *domain.ConsultantContextRequest) string {
	return ConsultantSummary(req.Step, req.Profile, req.LoadedCount)
}

// ClassifyUniversities annotates each university with its tier for studentGPA.
// Order is preserved and the input is not modified.
func ClassifyUniversities(studentGPA float64, universities []domain.University) []domain.MatchedUniversity {
	out := make([]domain.MatchedUniversity, len(universities))
	for i, uni := range universities {
		out[i] = domain.MatchedUniversity{
			University:   uni,
			DynamicMatch: gpa.Classify(studentGPA, uni.MinGpaReq),
		}
	}
	return out
}
