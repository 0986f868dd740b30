package v1

import (
	"math"
	"net/http"
	"strconv"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/gpa"

	"github.com/gin-gonic/gin"
)

// LetterResult is a resolved grade-point value
type LetterResult struct {
	Value  float64    `json:"value"`
	Letter gpa.Letter `json:"letter"`
}

type GradesHandler struct{}

func NewGradesHandler(r *gin.RouterGroup) {
	handler := &GradesHandler{}

	grades := r.Group("/grades")
	{
		grades.GET("/scale", handler.Scale)
		grades.GET("/letter", handler.Letter)
	}
}

// Scale godoc
// @Summary      Grade Scale
// @Description  Letter grades and their points, highest first
// @Tags         grades
// @Produce      json
// @Success      200  {object}  response.Response{data=[]gpa.GradePoint}
// @Router       /grades/scale [get]
func (h *GradesHandler) Scale(c *gin.Context) {
	response.Success(c, http.StatusOK, "Grade scale retrieved", gpa.Scale())
}

// Letter godoc
// @Summary      Resolve Letter Grade
// @Description  Maps a grade-point value to its letter. Unknown values resolve to B.
// @Tags         grades
// @Produce      json
// @Param        value  query     number  true  "Grade points"
// @Success      200    {object}  response.Response{data=LetterResult}
// @Failure      400    {object}  response.Response
// @Router       /grades/letter [get]
func (h *GradesHandler) Letter(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		c.Error(apperror.BadRequest("value must be a number"))
		return
	}
	response.Success(c, http.StatusOK, "Letter resolved", LetterResult{Value: value, Letter: gpa.LetterFor(value)})
}
