package controllers

import (
	"net/http"

	"studio-service/middleware"
	"studio-service/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the form and signs the session in
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, serr := ac.service.Login(c.Request.Context(), middleware.SessionID(c), req.Email, req.Password)
	if serr != nil {
		respondError(c, serr)
		return
	}

	c.SetCookie(middleware.TokenCookie, result.Token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "user": result.Profile})
}

// Register validates the form, creates a session-scoped account and signs in
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, serr := ac.service.Register(c.Request.Context(), middleware.SessionID(c), req.Name, req.Email, req.Password)
	if serr != nil {
		respondError(c, serr)
		return
	}

	c.SetCookie(middleware.TokenCookie, result.Token, 86400, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "user": result.Profile})
}

// Logout clears the signed-in profile and the token cookie
func (ac *AuthController) Logout(c *gin.Context) {
	if serr := ac.service.Logout(c.Request.Context(), middleware.SessionID(c)); serr != nil {
		respondError(c, serr)
		return
	}

	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the signed-in profile
func (ac *AuthController) Me(c *gin.Context) {
	profile, serr := ac.service.Me(c.Request.Context(), middleware.SessionID(c))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, profile)
}
