package api

import (
	"errors"
	"net/http"

	"reptrack/reptrack/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the optional cloud authentication collaborator.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- DTOs ---

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type SessionResponse struct {
	Token   string           `json:"token"`
	Session *service.Session `json:"session"`
}

// --- Handler Methods ---

// RequestOTP godoc
// @Summary Request a one-time sign-in code
// @Description Sends a short-lived sign-in code to the given email address.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RequestOTPRequest true "Email address"
// @Success 202 {object} gin.H "Code sent"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /auth/otp [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.authService.SignInWithOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to send sign-in code.")
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "sign-in code sent"})
}

// VerifyOTP exchanges a delivered code for a JWT session.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, session, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOTPNotRequested),
			errors.Is(err, service.ErrOTPExpired),
			errors.Is(err, service.ErrOTPInvalid):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to verify sign-in code.")
		}
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, Session: session})
}

// SignOut ends the current session.
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.authService.SignOut()
	c.Status(http.StatusNoContent)
}

// Me returns the identity bound to the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	email, err := getEmailFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get session from token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}
