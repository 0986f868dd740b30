package domain

import "context"

// WizardStep identifies where the user is in the consultant wizard
type WizardStep string

const (
	StepMajor    WizardStep = "major"
	StepGPA      WizardStep = "gpa"
	StepCountry  WizardStep = "country"
	StepFinished WizardStep = "finished"
)

// IsValid checks if the step is known
func (s WizardStep) IsValid() bool {
	switch s {
	case StepMajor, StepGPA, StepCountry, StepFinished:
		return true
	}
	return false
}

// Next returns the step that follows s. The country step leads to the dashboard.
func (s WizardStep) Next() WizardStep {
	switch s {
	case StepMajor:
		return StepGPA
	case StepGPA:
		return StepCountry
	default:
		return StepFinished
	}
}

// ConsultantOptions lists the choices offered by the wizard
type ConsultantOptions struct {
	Majors    []MajorOption `json:"majors"`
	Countries []string      `json:"countries"`
}

// WizardValidateRequest asks whether the wizard may leave the given step
type WizardValidateRequest struct {
	Step    WizardStep     `json:"step" binding:"required"`
	Profile StudentProfile `json:"profile"`
}

type WizardValidateResult struct {
	CanProceed bool       `json:"can_proceed"`
	NextStep   WizardStep `json:"next_step"`
}

// MatchRequest reclassifies universities for a GPA. When Universities is empty the
// catalog is used.
type MatchRequest struct {
	GPA          float64      `json:"gpa"`
	Universities []University `json:"universities,omitempty"`
}

// ConsultantContextRequest carries the page state summarised for the chat assistant
type ConsultantContextRequest struct {
	Step        WizardStep     `json:"step" binding:"required"`
	Profile     StudentProfile `json:"profile"`
	LoadedCount int            `json:"loaded_count"`
}

// ConsultantResult is the strategy map shown after the wizard
type ConsultantResult struct {
	Universities []MatchedUniversity `json:"universities"`
	Context      string              `json:"context"`
}

type ConsultantUsecase interface {
	Options() ConsultantOptions
	ValidateStep(ctx context.Context, req *WizardValidateRequest) (*WizardValidateResult, error)
	LoadUniversities(ctx context.Context, profile *StudentProfile) (*ConsultantResult, error)
	Match(ctx context.Context, req *MatchRequest) ([]MatchedUniversity, error)
	Summarize(req *ConsultantContextRequest) string
}
