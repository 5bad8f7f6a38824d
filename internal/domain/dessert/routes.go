package dessert

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only dessert routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/desserts", handler.List)
	r.GET("/desserts/:id", handler.Get)
	r.GET("/ingredients/:id/desserts", handler.ListForIngredient)
}

// RegisterProtectedRoutes registers dessert routes that require authentication
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/desserts", handler.Create)
	r.PUT("/desserts/:id", handler.Update)
	r.DELETE("/desserts/:id", handler.Delete)
	r.POST("/desserts/:id/ingredients/:ingredientId", handler.LinkIngredient)
	r.DELETE("/desserts/:id/ingredients/:ingredientId", handler.UnlinkIngredient)
}
