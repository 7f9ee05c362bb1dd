package controllers

import (
	"net/http"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type NutritionController struct {
	nutrition *services.NutritionService
	logger    logrus.FieldLogger
}

func NewNutritionController(nutrition *services.NutritionService, logger logrus.FieldLogger) *NutritionController {
	return &NutritionController{nutrition: nutrition, logger: logger}
}

type NutritionQueryInput struct {
	Query string `json:"query" binding:"required"`
}

// POST /api/nutrition-info  { "query": "1 slice of pizza" }
func (nc *NutritionController) GetNutritionInfo(c *gin.Context) {
	var input NutritionQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, nc.logger, apperrors.Validation(err.Error()))
		return
	}

	info, err := nc.nutrition.Lookup(c.Request.Context(), input.Query)
	if err != nil {
		respondError(c, nc.logger, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
