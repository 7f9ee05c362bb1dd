package controllers

import (
	"net/http"
	"strconv"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError renders err as the JSON error body for its kind. Server-side
// failures get a logged diagnostic; the client only ever sees the
// classified message.
func respondError(c *gin.Context, logger logrus.FieldLogger, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, gin.H{"error": apperrors.ClientMessage(err)})
}

// queryUserID parses the required userId query parameter.
func queryUserID(c *gin.Context) (uint, error) {
	raw := c.Query("userId")
	if raw == "" {
		return 0, apperrors.Validation("userId is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("userId must be a positive integer")
	}
	return uint(id), nil
}
