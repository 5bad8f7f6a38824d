package ingredient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/pkg/request"
	"dessertbook/internal/pkg/response"
	"dessertbook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/ingredients
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /api/v1/ingredients/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Find(c.Request.Context(), id)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if item == nil {
		response.Error(c, http.StatusNotFound, "INGREDIENT_NOT_FOUND", "Ingredient not found")
		return
	}
	response.Success(c, http.StatusOK, item)
}

// ListForDessert handles GET /api/v1/desserts/:id/ingredients
func (h *Handler) ListForDessert(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	items, err := h.service.ListForDessert(c.Request.Context(), id)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create handles POST /api/v1/ingredients
func (h *Handler) Create(c *gin.Context) {
	var req IngredientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	res, err := h.service.Add(c.Request.Context(), req)
	response.FromService(c, res, err)
}

// Update handles PUT /api/v1/ingredients/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	var req IngredientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if req.ID != id {
		response.CustomError(c, http.StatusBadRequest, "ID_MISMATCH", ErrIDMismatch)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	res, err := h.service.Update(c.Request.Context(), req)
	response.FromService(c, res, err)
}

// Delete handles DELETE /api/v1/ingredients/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	response.FromService(c, res, err)
}

// LinkDessert handles POST /api/v1/ingredients/:id/desserts/:dessertId
func (h *Handler) LinkDessert(c *gin.Context) {
	ingredientID, ok := request.PathID(c, "id")
	if !ok {
		return
	}
	dessertID, ok := request.PathID(c, "dessertId")
	if !ok {
		return
	}

	res, err := h.service.LinkDessert(c.Request.Context(), ingredientID, dessertID)
	response.FromService(c, res, err)
}

// UnlinkDessert handles DELETE /api/v1/ingredients/:id/desserts/:dessertId
func (h *Handler) UnlinkDessert(c *gin.Context) {
	ingredientID, ok := request.PathID(c, "id")
	if !ok {
		return
	}
	dessertID, ok := request.PathID(c, "dessertId")
	if !ok {
		return
	}

	res, err := h.service.UnlinkDessert(c.Request.Context(), ingredientID, dessertID)
	response.FromService(c, res, err)
}
