package usecase

import (
	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the GPA and profile tags registered
func NewValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	validation.RegisterEnum(v, "major_code", func(s string) bool { return domain.Major(s).IsValid() })
	validation.RegisterEnum(v, "country", domain.IsValidCountry)
	validation.RegisterEnum(v, "difficulty", func(s string) bool { return domain.Difficulty(s).IsValid() })
	return v
}
