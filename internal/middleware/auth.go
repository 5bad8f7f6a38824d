package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/pkg/jwt"
)

// tokenFromRequest prefers the Authorization header and falls back to the auth cookie.
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(jwt.CookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func authenticate(c *gin.Context, jwtService *jwt.Service) bool {
	token := tokenFromRequest(c)
	if token == "" {
		return false
	}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return false
	}
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	return true
}

// JWTAuth rejects API requests without a valid token.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtService) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"},
			})
			return
		}
		c.Next()
	}
}

// PageAuth redirects anonymous browsers to loginPath, remembering where they were going.
func PageAuth(jwtService *jwt.Service, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtService) {
			target := loginPath + "?returnUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the user when a valid token is present.
func OptionalAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, jwtService)
		c.Next()
	}
}
