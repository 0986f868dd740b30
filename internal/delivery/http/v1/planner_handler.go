package v1

import (
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PlannerHandler struct {
	plannerUC domain.PlannerUsecase
}

func NewPlannerHandler(r *gin.RouterGroup, plannerUC domain.PlannerUsecase) {
	handler := &PlannerHandler{plannerUC: plannerUC}

	planner := r.Group("/planner")
	{
		planner.GET("/courses", handler.Courses)
		planner.POST("/simulate", handler.Simulate)
		planner.POST("/export", handler.Export)
	}
}

// Courses godoc
// @Summary      Course Roadmap
// @Description  Next semester's courses with each grade seeded from its target grade
// @Tags         planner
// @Produce      json
// @Param        school  query     string  false  "Target school id"  default(nyu)
// @Success      200     {object}  response.Response{data=domain.RoadmapResult}
// @Failure      500     {object}  response.Response
// @Router       /planner/courses [get]
func (h *PlannerHandler) Courses(c *gin.Context) {
	profile := domain.InitialProfile()
	res, err := h.plannerUC.LoadRoadmap(c.Request.Context(), &profile, c.Query("school"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Courses retrieved", res)
}

// Simulate godoc
// @Summary      Simulate GPA
// @Description  Projects the cumulative GPA after next semester's planned grades
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SimulationRequest  true  "Grade plan"
// @Success      200      {object}  response.Response{data=domain.SimulationResult}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /planner/simulate [post]
func (h *PlannerHandler) Simulate(c *gin.Context) {
	var req domain.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	res, err := h.plannerUC.Simulate(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Simulation complete", res)
}

// Export godoc
// @Summary      Export Plan
// @Description  Downloads the simulated plan as an Excel workbook
// @Tags         planner
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request  body      domain.SimulationRequest  true  "Grade plan"
// @Success      200      {file}    binary
// @Failure      400      {object}  response.Response
// @Router       /planner/export [post]
func (h *PlannerHandler) Export(c *gin.Context) {
	var req domain.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	data, filename, err := h.plannerUC.Export(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}
