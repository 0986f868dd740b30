package v1

import (
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health Check
// @Description  Liveness plus the state of the optional database and redis backends
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.healthUC.Check(c.Request.Context()))
}
