package controllers

import (
	"net/http"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ImageUploadController struct {
	uploader *utils.ImageUploader // nil when S3 is not configured
	logger   logrus.FieldLogger
}

func NewImageUploadController(uploader *utils.ImageUploader, logger logrus.FieldLogger) *ImageUploadController {
	return &ImageUploadController{uploader: uploader, logger: logger}
}

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /api/upload-image  { "image_base64": "data:image/jpeg;base64,..." }
func (uc *ImageUploadController) UploadImage(c *gin.Context) {
	if uc.uploader == nil {
		respondError(c, uc.logger, apperrors.Internal("image uploads are not configured", nil))
		return
	}

	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, uc.logger, apperrors.Validation(err.Error()))
		return
	}

	url, err := uc.uploader.UploadBase64Image(c.Request.Context(), input.ImageBase64)
	if err != nil {
		respondError(c, uc.logger, apperrors.Upstream("image upload failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
