package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yongsanfmc/instructor-directory/internal/app/models/dto"
	"github.com/yongsanfmc/instructor-directory/internal/app/services"
	"github.com/yongsanfmc/instructor-directory/internal/middleware"
)

// TimetableController handles the external timetable link endpoints
type TimetableController struct {
	timetableService *services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService *services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// ListTimetableURLs returns every stored timetable link
func (c *TimetableController) ListTimetableURLs(ctx *gin.Context) {
	entries := c.timetableService.List(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// GetTimetableURL returns the link for one center/category pair. A pair
// without a stored link is a 404.
func (c *TimetableController) GetTimetableURL(ctx *gin.Context) {
	centerName := ctx.Param("center")
	categoryName := ctx.Param("category")

	url, found, err := c.timetableService.Get(ctx.Request.Context(), centerName, categoryName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !found {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No timetable URL for this center and category")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TimetableURLResponse{
		CenterName:   centerName,
		CategoryName: categoryName,
		URL:          url,
	}))
}

// SetTimetableURL stores the link for one center/category pair
func (c *TimetableController) SetTimetableURL(ctx *gin.Context) {
	centerName := ctx.Param("center")
	categoryName := ctx.Param("category")

	var req dto.SetTimetableURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timetable URL data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.timetableService.Set(ctx.Request.Context(), centerName, categoryName, req.URL); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TimetableURLResponse{
		CenterName:   centerName,
		CategoryName: categoryName,
		URL:          strings.TrimSpace(req.URL),
	}))
}

// DeleteTimetableURL removes the link for one center/category pair
func (c *TimetableController) DeleteTimetableURL(ctx *gin.Context) {
	centerName := ctx.Param("center")
	categoryName := ctx.Param("category")

	if err := c.timetableService.Remove(ctx.Request.Context(), centerName, categoryName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
