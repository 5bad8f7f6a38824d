package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers routes open to anonymous callers. loginGuard
// wraps the login route, e.g. with a rate limiter; it may be nil.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup, loginGuard gin.HandlerFunc) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		if loginGuard != nil {
			authGroup.POST("/login", loginGuard, h.Login)
		} else {
			authGroup.POST("/login", h.Login)
		}
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)
}
