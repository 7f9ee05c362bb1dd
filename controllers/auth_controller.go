package controllers

import (
	"net/http"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/middlewares"
	"github.com/Hariom8799/nutrisnap/services"
	"github.com/Hariom8799/nutrisnap/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// cookieMaxAge matches the token TTL: one day, in seconds.
const cookieMaxAge = 86400

type AuthController struct {
	auth      *services.AuthService
	jwtSecret string
	secure    bool // Secure cookie flag, on in production
	logger    logrus.FieldLogger
}

func NewAuthController(auth *services.AuthService, jwtSecret string, secure bool, logger logrus.FieldLogger) *AuthController {
	return &AuthController{auth: auth, jwtSecret: jwtSecret, secure: secure, logger: logger}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ac.logger, apperrors.Validation(err.Error()))
		return
	}

	if _, err := ac.auth.Register(input.Name, input.Email, input.Password); err != nil {
		respondError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/signin
func (ac *AuthController) SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, ac.logger, apperrors.Validation(err.Error()))
		return
	}

	token, _, err := ac.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.SessionCookie, token, cookieMaxAge, "/", "", ac.secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Authentication successful"})
}

// POST /api/auth/signout
func (ac *AuthController) SignOut(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", ac.secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// GET /api/auth/status
func (ac *AuthController) Status(c *gin.Context) {
	tokenString, err := c.Cookie(middlewares.SessionCookie)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuthenticated": false})
		return
	}

	userID, err := utils.VerifyToken(tokenString, ac.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuthenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "userId": userID})
}
