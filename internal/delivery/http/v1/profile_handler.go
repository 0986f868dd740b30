package v1

import (
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}
	r.PUT("/profile", handler.Update)
}

// Update godoc
// @Summary      Save Profile
// @Description  Validates and echoes the student profile. Nothing is persisted.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.StudentProfile  true  "Student profile"
// @Success      200      {object}  response.Response{data=domain.ProfileUpdateResult}
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var profile domain.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	res, err := h.profileUC.UpdateProfile(c.Request.Context(), &profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", res)
}
