package v1

import (
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type BootstrapHandler struct {
	bootstrapUC domain.BootstrapUsecase
}

func NewBootstrapHandler(r *gin.RouterGroup, bootstrapUC domain.BootstrapUsecase) {
	handler := &BootstrapHandler{bootstrapUC: bootstrapUC}
	r.GET("/bootstrap", handler.Load)
}

// Load godoc
// @Summary      App Bootstrap
// @Description  Initial profile, wizard options, grade scale, strategy map and course roadmap in one call.
// @Tags         bootstrap
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Bootstrap}
// @Failure      500  {object}  response.Response
// @Router       /bootstrap [get]
func (h *BootstrapHandler) Load(c *gin.Context) {
	data, err := h.bootstrapUC.Load(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bootstrap loaded", data)
}
