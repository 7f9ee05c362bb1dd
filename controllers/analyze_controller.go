package controllers

import (
	"net/http"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AnalyzeController struct {
	classifier *services.ClassifierService
	logger     logrus.FieldLogger
}

func NewAnalyzeController(classifier *services.ClassifierService, logger logrus.FieldLogger) *AnalyzeController {
	return &AnalyzeController{classifier: classifier, logger: logger}
}

// POST /api/analyze-food — multipart form, single field "file"
func (ac *AnalyzeController) AnalyzeFood(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, ac.logger, apperrors.Validation("invalid file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, ac.logger, apperrors.Internal("failed to read uploaded file", err))
		return
	}
	defer file.Close()

	analysis, err := ac.classifier.Classify(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
