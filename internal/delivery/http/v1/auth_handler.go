package v1

import (
	"net/http"
	"time"

	"study-planner-backend/internal/delivery/http/middleware"
	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	secureCookie bool
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, secureCookie bool) {
	handler := &AuthHandler{
		authUC:       authUC,
		secureCookie: secureCookie,
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/me", handler.Me)
	}
}

// Login godoc
// @Summary      Demo Login
// @Description  Accepts any name and access key. Blank names become "BNBUer". Responds after a short artificial delay.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginRequest  true  "Login Details"
// @Success      200    {object}  response.Response{data=domain.Session}
// @Failure      400    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := h.authUC.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", h.secureCookie, true)

	response.Success(c, http.StatusOK, "Login successful", session)
}

// Me godoc
// @Summary      Current User
// @Description  Returns the display name carried by the session, or "同学" when anonymous.
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer session token"
// @Success      200            {object}  response.Response{data=domain.CurrentUser}
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, "Current user retrieved", h.authUC.CurrentUser(c.Request.Context()))
}
