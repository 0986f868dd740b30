package validation_test

import (
	"testing"

	"study-planner-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gradeForm struct {
	GPA      float64            `validate:"gpa_scale"`
	Code     string             `validate:"course_code"`
	Username string             `validate:"no_emoji"`
	Grades   map[string]float64 `validate:"dive,gpa_scale"`
	Color    string             `validate:"color"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	validation.RegisterEnum(v, "color", func(s string) bool { return s == "gold" || s == "teal" })
	return v
}

func TestValidators(t *testing.T) {
	v := newValidator()

	t.Run("Valid form passes", func(t *testing.T) {
		err := v.Struct(gradeForm{GPA: 3.4, Code: "FIN4002", Username: "博一", Grades: map[string]float64{"FIN4002": 4.0}, Color: "gold"})
		assert.NoError(t, err)
	})

	t.Run("Empty optional fields pass", func(t *testing.T) {
		assert.NoError(t, v.Struct(gradeForm{}))
	})

	t.Run("GPA above scale fails", func(t *testing.T) {
		err := v.Struct(gradeForm{GPA: 4.2})
		require.Error(t, err)
		msgs := validation.FormatValidationErrors(err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "0.00 到 4.00")
	})

	t.Run("Grade map entries are checked", func(t *testing.T) {
		err := v.Struct(gradeForm{Grades: map[string]float64{"FIN4002": -1}})
		require.Error(t, err)
		msgs := validation.FormatValidationErrors(err)
		assert.Contains(t, msgs[0], "目标成绩[FIN4002]")
	})

	t.Run("Bad course code and emoji fail", func(t *testing.T) {
		err := v.Struct(gradeForm{Code: "fin-4002", Username: "hi 🎓"})
		require.Error(t, err)
		assert.Len(t, validation.FormatValidationErrors(err), 2)
	})

	t.Run("Enum rejects unknown value", func(t *testing.T) {
		assert.Error(t, v.Struct(gradeForm{Color: "red"}))
	})
}

func TestFormatValidationErrorsNonValidation(t *testing.T) {
	msgs := validation.FormatValidationErrors(assert.AnError)
	assert.Equal(t, []string{assert.AnError.Error()}, msgs)
}
