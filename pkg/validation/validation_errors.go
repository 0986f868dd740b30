package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing Chinese labels
var FieldLabels = map[string]string{
	// StudentProfile fields
	"GPA":             "GPA",
	"Major":           "专业",
	"TargetCountries": "目标国家/地区",
	"DreamSchoolID":   "梦校",

	// Planner fields
	"CurrentGPA":   "当前 GPA",
	"PastCredits":  "已修学分",
	"TargetGPA":    "目标 GPA",
	"TargetSchool": "目标学校",
	"Grades":       "目标成绩",
	"Courses":      "课程",
	"Code":         "课程代码",
	"Credits":      "学分",
	"Difficulty":   "难度",

	// Login fields
	"Username":  "名字 / 昵称",
	"AccessKey": "访问密钥",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: 必填", label)

	case "min", "gte":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: 至少 %s 个字符", label, param)
		}
		return fmt.Sprintf("%s: 不能小于 %s", label, param)

	case "max", "lte":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: 最多 %s 个字符", label, param)
		}
		return fmt.Sprintf("%s: 不能大于 %s", label, param)

	case "gt":
		return fmt.Sprintf("%s: 必须大于 %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: 必须是以下之一: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "gpa_scale":
		return fmt.Sprintf("%s: 必须在 0.00 到 4.00 之间", label)

	case "major_code":
		return fmt.Sprintf("%s: 不支持的专业代码", label)

	case "country":
		return fmt.Sprintf("%s: 不支持的国家/地区", label)

	case "difficulty":
		return fmt.Sprintf("%s: 难度必须是 Easy、Medium、Hard 或 Killer", label)

	case "course_code":
		return fmt.Sprintf("%s: 课程代码格式无效", label)

	case "no_emoji":
		return fmt.Sprintf("%s: 不能包含表情或特殊符号", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: 校验失败 (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	// dive errors arrive as Grades[FIN4002] or TargetCountries[0]
	base := fieldName
	if i := strings.IndexByte(fieldName, '['); i > 0 {
		base = fieldName[:i]
	}
	if label, ok := FieldLabels[base]; ok {
		return label + fieldName[len(base):]
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
