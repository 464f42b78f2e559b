package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/app/services"
	"github.com/HoseaMuriira/iruma-portal/internal/middleware"
)

// IntakeController takes the public admissions and contact form posts.
type IntakeController struct {
	portalService services.PortalService
	redirects     RedirectMap
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(portalService services.PortalService, redirects RedirectMap) *IntakeController {
	return &IntakeController{portalService: portalService, redirects: redirects}
}

// Apply godoc
// @Summary Submit an admissions application
// @Description Accepts form or JSON posts; no authentication required
// @Tags intake
// @Accept json
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "redirect to the confirmation view"
// @Router /apply [post]
func (c *IntakeController) Apply(ctx *gin.Context) {
	var req dto.ApplicationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.portalService.SubmitApplication(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Intake is a browser form flow; success is always the confirmation page
	ctx.Redirect(http.StatusFound, c.redirects.ApplyDone)
}

// ContactSend godoc
// @Summary Submit a contact message
// @Description Accepts form or JSON posts; no authentication required
// @Tags intake
// @Accept json
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "redirect to the confirmation view"
// @Router /contact-send [post]
func (c *IntakeController) ContactSend(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.portalService.SubmitContact(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, c.redirects.ContactDone)
}
