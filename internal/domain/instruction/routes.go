package instruction

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only instruction routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/instructions", handler.List)
	r.GET("/instructions/:id", handler.Get)
	r.GET("/desserts/:id/instructions", handler.ListForDessert)
	r.GET("/ingredients/:id/instructions", handler.ListForIngredient)
}

// RegisterProtectedRoutes registers instruction routes that require authentication
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/instructions", handler.Create)
	r.PUT("/instructions/:id", handler.Update)
	r.DELETE("/instructions/:id", handler.Delete)
}
