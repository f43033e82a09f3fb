package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
	"github.com/karobar/karobar_backend/pkg/config"
)

// authHandler handles registration, OTP verification and login.
type authHandler struct {
	authService portssvc.AuthService
}

func newAuthHandler(as portssvc.AuthService) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. OTP-issuing and
// login endpoints sit behind a per-IP rate limiter.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, as portssvc.AuthService) {
	h := newAuthHandler(as)
	limit := middleware.NewRateLimiter(cfg.AuthRateLimit)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limit, h.register)
		auth.POST("/verify", limit, h.verify)
		auth.POST("/login", limit, h.login)
		auth.POST("/forgot-password", limit, h.forgotPassword)
		auth.POST("/reset-password", limit, h.resetPassword)
	}
}

// register godoc
// @Summary Register a user
// @Description Creates an inactive account and emails a one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.ToDomain(), req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// verify godoc
// @Summary Verify a registration OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /auth/verify [post]
func (h *authHandler) verify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.VerifyRegistration(c.Request.Context(), req.Email, req.Code); err != nil {
		respondServiceError(c, logger, err, "Failed to verify registration")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account verified"})
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account not verified"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// forgotPassword godoc
// @Summary Request a password reset OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, logger, err, "Failed to request password reset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent"})
}

// resetPassword godoc
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		respondServiceError(c, logger, err, "Failed to reset password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
