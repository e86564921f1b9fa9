package main

import (
	"fmt"
	"strings"

	"github.com/ahosmi/content-dashboard/internal/auth"
	"github.com/ahosmi/content-dashboard/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. A missing or malformed header is
// 401; a token that fails verification (bad signature, expired) is 403.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerFromAuthHeader(c)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(app.Config.JWT.Secret, token)
		if err != nil {
			response.Forbidden(c, "invalid token")
			c.Abort()
			return
		}

		// Check the user still exists
		if _, err := app.Repository.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
			response.Forbidden(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

func bearerFromAuthHeader(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header")
	}

	return fields[1], nil
}
