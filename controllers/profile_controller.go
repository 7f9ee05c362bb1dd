package controllers

import (
	"net/http"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProfileController struct {
	profiles *services.ProfileService
	logger   logrus.FieldLogger
}

func NewProfileController(profiles *services.ProfileService, logger logrus.FieldLogger) *ProfileController {
	return &ProfileController{profiles: profiles, logger: logger}
}

// GET /api/user-profile?userId=123
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	profile, err := pc.profiles.GetByUserID(userID)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// POST /api/user-profile
func (pc *ProfileController) CreateProfile(c *gin.Context) {
	pc.upsert(c)
}

// PUT /api/user-profile
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	pc.upsert(c)
}

// Create and update share upsert semantics: one profile per user, the daily
// calorie goal recomputed on every save.
func (pc *ProfileController) upsert(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, pc.logger, apperrors.Validation(err.Error()))
		return
	}

	profile, err := pc.profiles.Upsert(input)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
