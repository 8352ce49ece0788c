package middlewares

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/tg-store/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const bearerPrefix = "Bearer "

func checkAuthorization(c *gin.Context, jwtSecret []byte) error {
	tokenHeader := c.GetHeader("Authorization")

	if len(tokenHeader) < len(bearerPrefix) || tokenHeader[:len(bearerPrefix)] != bearerPrefix {
		return ErrTokenNotExist
	}

	_, err := tokens.ValidateAdminJWT(tokenHeader[len(bearerPrefix):], jwtSecret)
	return err //nolint:wrapcheck
}

// AdminRequired пропускает только запросы с действующим админским JWT.
func AdminRequired(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checkAuthorization(c, jwtSecret); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Next()
	}
}
