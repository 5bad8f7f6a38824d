package ingredient

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only ingredient routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/ingredients", handler.List)
	r.GET("/ingredients/:id", handler.Get)
	r.GET("/desserts/:id/ingredients", handler.ListForDessert)
}

// RegisterProtectedRoutes registers ingredient routes that require authentication
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/ingredients", handler.Create)
	r.PUT("/ingredients/:id", handler.Update)
	r.DELETE("/ingredients/:id", handler.Delete)
	r.POST("/ingredients/:id/desserts/:dessertId", handler.LinkDessert)
	r.DELETE("/ingredients/:id/desserts/:dessertId", handler.UnlinkDessert)
}
