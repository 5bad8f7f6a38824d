package review

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only review routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/reviews", handler.List)
	r.GET("/reviews/:id", handler.Get)
	r.GET("/desserts/:id/reviews", handler.ListForDessert)
}

// RegisterProtectedRoutes registers review routes that require authentication
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/reviews", handler.Create)
	r.PUT("/reviews/:id", handler.Update)
	r.DELETE("/reviews/:id", handler.Delete)
	r.PUT("/reviews/:id/image", handler.UpdateImage)
}
