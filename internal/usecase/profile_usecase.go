package usecase

import (
	"context"
	"strings"
	"time"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.StudentProfile) (*domain.ProfileUpdateResult, error) {
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	saved, err := u.repo.SaveProfile(ctx, profile)
	if err != nil {
		return nil, repoFailure("Failed to save profile", err)
	}

	return &domain.ProfileUpdateResult{
		Profile: *saved,
		SavedAt: time.Now().UTC(),
	}, nil
}
