package v1

import (
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConsultantHandler struct {
	consultantUC domain.ConsultantUsecase
}

func NewConsultantHandler(r *gin.RouterGroup, consultantUC domain.ConsultantUsecase) {
	handler := &ConsultantHandler{consultantUC: consultantUC}

	consultant := r.Group("/consultant")
	{
		consultant.GET("/options", handler.Options)
		consultant.POST("/wizard/validate", handler.ValidateStep)
		consultant.POST("/universities", handler.LoadUniversities)
		consultant.POST("/match", handler.Match)
		consultant.POST("/context", handler.Context)
	}
}

// Options godoc
// @Summary      Wizard Options
// @Description  Majors and destination countries offered by the consultant wizard
// @Tags         consultant
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ConsultantOptions}
// @Router       /consultant/options [get]
func (h *ConsultantHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, "Options retrieved", h.consultantUC.Options())
}

// ValidateStep godoc
// @Summary      Validate Wizard Step
// @Description  Reports whether the wizard may move past the given step
// @Tags         consultant
// @Accept       json
// @Produce      json
// @Param        request  body      domain.WizardValidateRequest  true  "Step and profile"
// @Success      200      {object}  response.Response{data=domain.WizardValidateResult}
// @Failure      400      {object}  response.Response
// @Router       /consultant/wizard/validate [post]
func (h *ConsultantHandler) ValidateStep(c *gin.Context) {
	var req domain.WizardValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	res, err := h.consultantUC.ValidateStep(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Step validated", res)
}

// LoadUniversities godoc
// @Summary      Strategy Map
// @Description  Fetches universities for the profile and classifies each as Reach, Match or Safety
// @Tags         consultant
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.StudentProfile  true  "Student profile"
// @Success      200      {object}  response.Response{data=domain.ConsultantResult}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /consultant/universities [post]
func (h *ConsultantHandler) LoadUniversities(c *gin.Context) {
	var profile domain.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	res, err := h.consultantUC.LoadUniversities(c.Request.Context(), &profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Universities retrieved", res)
}

// Match godoc
// @Summary      Reclassify Universities
// @Description  Recomputes match tiers for a GPA without the fetch delay
// @Tags         consultant
// @Accept       json
// @Produce      json
// @Param        request  body      domain.MatchRequest  true  "GPA and optional universities"
// @Success      200      {object}  response.Response{data=[]domain.MatchedUniversity}
// @Failure      400      {object}  response.Response
// @Router       /consultant/match [post]
func (h *ConsultantHandler) Match(c *gin.Context) {
	var req domain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	res, err := h.consultantUC.Match(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Universities classified", res)
}

// Context godoc
// @Summary      Consultant Page Context
// @Description  Builds the page summary the chat assistant receives
// @Tags         consultant
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ConsultantContextRequest  true  "Page state"
// @Success      200      {object}  response.Response{data=string}
// @Failure      400      {object}  response.Response
// @Router       /consultant/context [post]
func (h *ConsultantHandler) Context(c *gin.Context) {
	var req domain.ConsultantContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	response.Success(c, http.StatusOK, "Context built", h.consultantUC.Summarize(&req))
}
