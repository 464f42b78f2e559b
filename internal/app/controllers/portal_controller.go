package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/app/services"
	"github.com/HoseaMuriira/iruma-portal/internal/middleware"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

// PortalController serves the authenticated resource reads.
type PortalController struct {
	portalService services.PortalService
}

// NewPortalController creates a new PortalController
func NewPortalController(portalService services.PortalService) *PortalController {
	return &PortalController{portalService: portalService}
}

// Profile godoc
// @Summary Profile of the logged-in user
// @Description Returns the fresh user row plus the student record when one exists
// @Tags portal
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/profile [get]
// @Security SessionCookie
func (c *PortalController) Profile(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	user, student, err := c.portalService.Profile(ctx, session.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{OK: true, Profile: dto.Profile{User: user, Student: student}})
}

// Departments godoc
// @Summary List departments
// @Tags portal
// @Produce json
// @Success 200 {object} dto.DepartmentsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/departments [get]
// @Security SessionCookie
func (c *PortalController) Departments(ctx *gin.Context) {
	departments, err := c.portalService.Departments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DepartmentsResponse{OK: true, Departments: departments})
}

// Students godoc
// @Summary List students with their owning users
// @Description Staff only; students cannot browse the roster
// @Tags portal
// @Produce json
// @Success 200 {object} dto.StudentsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/students [get]
// @Security SessionCookie
func (c *PortalController) Students(ctx *gin.Context) {
	students, err := c.portalService.Students(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentsResponse{OK: true, Students: students})
}

// StudentResults godoc
// @Summary Results for a student
// @Description Students may only read their own results
// @Tags portal
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/students/{id}/results [get]
// @Security SessionCookie
func (c *PortalController) StudentResults(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid student id"))
		return
	}

	results, err := c.portalService.StudentResults(ctx, session, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResultsResponse{OK: true, Results: results})
}
