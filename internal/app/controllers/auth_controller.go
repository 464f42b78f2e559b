package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/app/services"
	"github.com/HoseaMuriira/iruma-portal/internal/middleware"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

// AuthController handles registration, login, logout and the current-user
// lookup.
type AuthController struct {
	authService  services.AuthService
	cookieName   string
	cookieMaxAge int
	redirects    RedirectMap
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookieName string, cookieMaxAge int, redirects RedirectMap) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		redirects:    redirects,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and starts a session for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, token, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token)
	respondOrRedirect(ctx, http.StatusOK, dto.AuthResponse{OK: true, User: user}, c.redirects.RegisterDone)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and starts a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, token, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token)
	respondOrRedirect(ctx, http.StatusOK, dto.AuthResponse{OK: true, User: user}, c.loginDestination(user.Role))
}

// Logout godoc
// @Summary Log out
// @Description Destroys the current session; safe to call without one
// @Tags auth
// @Produce json
// @Success 200 {object} dto.OKResponse
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(c.cookieName)

	if err := c.authService.Logout(ctx, token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.clearSessionCookie(ctx)
	respondOrRedirect(ctx, http.StatusOK, dto.OKResponse{OK: true}, c.redirects.LogoutDone)
}

// Me godoc
// @Summary Current session
// @Description Returns the identity snapshot taken at login
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/me [get]
// @Security SessionCookie
func (c *AuthController) Me(ctx *gin.Context) {
	token, err := ctx.Cookie(c.cookieName)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	session, err := c.authService.CurrentUser(ctx, token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{OK: true, User: session.User()})
}

func (c *AuthController) loginDestination(role models.RoleType) string {
	switch role {
	case models.RoleStudent:
		return c.redirects.LoginStudent
	case models.RoleTeacher:
		return c.redirects.LoginTeacher
	default:
		return c.redirects.LoginAdmin
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, token, c.cookieMaxAge, "/", "", false, true)
}

func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
}
