package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offistation-service/middleware"
	"offistation-service/models"
	"offistation-service/services"
)

// AuthController handles the demo login and logout.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /login.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials", "details": err.Error()})
		return
	}

	resp, svcErr := ac.authService.Login(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout handles POST /logout. The cart and applied voucher go with the
// session.
func (ac *AuthController) Logout(ctx *gin.Context) {
	if svcErr := ac.authService.Logout(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
