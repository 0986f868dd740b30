package usecase

import (
	"fmt"
	"strings"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/gpa"
)

// ConsultantSummary describes the consultant page for the chat assistant
func ConsultantSummary(step domain.WizardStep, profile domain.StudentProfile, loaded int) string {
	var stepLabel string
	switch step {
	case domain.StepFinished:
		stepLabel = "已完成向导，正在查看战略地图"
	case domain.StepGPA:
		stepLabel = "正在第 2 步"
	case domain.StepCountry:
		stepLabel = "正在第 3 步"
	default:
		stepLabel = "正在第 1 步"
	}

	countries := strings.Join(profile.TargetCountries, ", ")
	if countries == "" {
		countries = "未选择"
	}

	summary := fmt.Sprintf("用户在顾问页面。%s。已选专业: %s。当前 GPA: %s。目标国家/地区: %s。",
		stepLabel, profile.Major.Label(), gpa.Format(profile.GPA), countries)
	if loaded > 0 {
		summary += fmt.Sprintf("已加载 %d 所匹配大学。", loaded)
	}
	return summary
}

// PlannerSummary describes the planner page for the chat assistant
func PlannerSummary(r *domain.SimulationResult) string {
	status := "存在风险"
	if r.Feasible {
		status = "战略可行"
	}

	summary := fmt.Sprintf("用户在规划器页面。目标学校: %s。当前 GPA: %s，目标 GPA: %s，差距: %.2f。模拟期末后 GPA: %s。%s。",
		r.TargetSchool, gpa.Format(r.CurrentGPA), gpa.Format(r.TargetGPA), r.CurrentGap, gpa.Format(r.SimulatedGPA), status)
	if !r.Feasible {
		summary += fmt.Sprintf("仍差 %.2f 绩点。", r.RemainingGap)
	}
	summary += fmt.Sprintf("正在规划 %d 门下学期课程。", len(r.Courses))
	return summary
}
