package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/gpa"

	"github.com/xuri/excelize/v2"
)

const planSheet = "Plan"

// Export renders the simulated plan as an XLSX workbook
func (u *plannerUsecase) Export(ctx context.Context, req *domain.SimulationRequest) ([]byte, string, error) {
	result, err := u.Simulate(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := writePlanWorkbook(result)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("gpa_plan_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, filename, nil
}

func writePlanWorkbook(r *domain.SimulationResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", planSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"课程代码", "课程名称", "学分", "难度", "目标成绩", "计划绩点", "计划等级", "复习资料"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(planSheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1B263B"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(planSheet, "A1", endCell, headerStyle)

	for i, c := range r.Courses {
		row := []interface{}{
			c.Code, c.Name, c.Credits, string(c.Difficulty), string(c.TargetGrade),
			c.GradePoint, string(c.GradeLetter), yesNo(c.NeedsReviewKit),
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(planSheet, cell, v)
		}
	}

	summary := [][2]interface{}{
		{"目标学校", r.TargetSchool},
		{"当前 GPA", gpa.Format(r.CurrentGPA)},
		{"已修学分", r.PastCredits},
		{"目标 GPA", gpa.Format(r.TargetGPA)},
		{"新增学分", r.TotalNewCredits},
		{"模拟 GPA", r.Display},
		{"状态", feasibility(r.Feasible)},
	}
	start := len(r.Courses) + 3
	for i, kv := range summary {
		f.SetCellValue(planSheet, fmt.Sprintf("A%d", start+i), kv[0])
		f.SetCellValue(planSheet, fmt.Sprintf("B%d", start+i), kv[1])
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(planSheet, colName, colName, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func yesNo(b bool) string {
	if b {
		return "需要"
	}
	return "-"
}

func feasibility(ok bool) string {
	if ok {
		return "战略可行"
	}
	return "存在风险"
}
