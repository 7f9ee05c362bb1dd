package middlewares

import (
	"net/http"

	"github.com/Hariom8799/nutrisnap/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

// AuthMiddleware gates the protected route group. A missing, malformed,
// expired, or badly-signed token redirects to the sign-in page; on success
// the embedded user id is attached to the request context.
func AuthMiddleware(jwtSecret string, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/auth/signin")
			c.Abort()
			return
		}

		userID, err := utils.VerifyToken(tokenString, jwtSecret)
		if err != nil {
			logger.WithError(err).Warn("session token verification failed")
			c.Redirect(http.StatusFound, "/auth/signin")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
