package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Course codes look like FIN4002 or STAT3002
	courseCodeRegex = regexp.MustCompile(`^[A-Z]{2,5}[0-9]{4}$`)
)

// GPA scale bounds
const (
	MinGPA = 0.0
	MaxGPA = 4.0
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("gpa_scale", GPAScale)
	_ = v.RegisterValidation("course_code", CourseCode)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// RegisterEnum registers a tag that accepts a string field when allowed returns true.
// Empty strings pass; combine with required when needed.
func RegisterEnum(v *validator.Validate, tag string, allowed func(string) bool) {
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		return allowed(val)
	})
}

// GPAScale validates that a float field lies on the 0.0-4.0 scale
func GPAScale(fl validator.FieldLevel) bool {
	val := fl.Field().Float()
	return val >= MinGPA && val <= MaxGPA
}

// CourseCode validates a course code like FIN4002
func CourseCode(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return courseCodeRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		// Most emojis are in the supplementary planes
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) { // Symbol, other / Symbol, modifier
			return false
		}
	}
	return true
}
