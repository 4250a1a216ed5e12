package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/invinci009/rmw/internal/application/service"
	"github.com/invinci009/rmw/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
	Name  string `json:"name"`
}

// AdminLogin handles admin email/password login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.authService.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// SendOTP generates and delivers a login code to the customer's phone. The
// body is read with the cached binder because the per-phone rate limiter has
// already consumed it.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		response.BadRequest(c, "Phone is required")
		return
	}

	code, err := h.authService.SendOTP(c.Request.Context(), req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{}
	if code != "" {
		// Dev-mode echo only; never set in production
		data["otp"] = code
	}
	response.OK(c, "OTP sent successfully", data)
}

// VerifyOTP checks the code and logs the customer in
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Phone and OTP are required")
		return
	}

	result, err := h.authService.VerifyOTP(c.Request.Context(), req.Phone, req.OTP, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}
