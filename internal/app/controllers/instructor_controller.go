package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/app/models/dto"
	"github.com/yongsanfmc/instructor-directory/internal/app/query"
	"github.com/yongsanfmc/instructor-directory/internal/app/services"
	"github.com/yongsanfmc/instructor-directory/internal/middleware"
)

// InstructorController handles directory listing, search and admin
// maintenance endpoints.
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// ListInstructors returns instructors narrowed by the optional center,
// category and q query parameters, sorted by name.
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	centerName := ctx.Query("center")
	categoryName := ctx.Query("category")
	term := ctx.Query("q")

	instructors := c.instructorService.List(ctx.Request.Context(), centerName, categoryName, term)

	responses := make([]dto.InstructorResponse, 0, len(instructors))
	for _, inst := range instructors {
		responses = append(responses, toInstructorResponse(inst))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.InstructorListResponse{
		Count:       len(responses),
		Instructors: responses,
	}))
}

// GetOverview returns the full collection grouped by center and category in
// reference display order.
func (c *InstructorController) GetOverview(ctx *gin.Context) {
	groups := c.instructorService.Overview(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(groups))
}

// SaveInstructor upserts one full instructor record
func (c *InstructorController) SaveInstructor(ctx *gin.Context) {
	var req dto.SaveInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	saved, err := c.instructorService.Save(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toInstructorResponse(saved)))
}

// DeleteInstructor removes one record by id
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.instructorService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}

func toInstructorResponse(inst models.Instructor) dto.InstructorResponse {
	return dto.InstructorResponse{
		Instructor:  inst,
		GenderLabel: query.GenderLabel(inst.Gender),
	}
}
