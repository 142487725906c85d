package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yongsanfmc/instructor-directory/internal/app/models/dto"
	"github.com/yongsanfmc/instructor-directory/internal/app/reference"
)

// ReferenceController serves the static facility and category tables
type ReferenceController struct{}

// NewReferenceController creates a new ReferenceController
func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

// HealthCheck reports service liveness
func (c *ReferenceController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
}

// ListCenters returns every facility in display priority order
func (c *ReferenceController) ListCenters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reference.DisplayCenters()))
}

// ListCategories returns every discipline in display priority order
func (c *ReferenceController) ListCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reference.DisplayCategories()))
}

// ListCenterCategories returns the disciplines offered at one center.
// Unknown centers yield an empty list rather than an error.
func (c *ReferenceController) ListCenterCategories(ctx *gin.Context) {
	centerName := ctx.Param("name")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reference.CategoriesForCenter(centerName)))
}
