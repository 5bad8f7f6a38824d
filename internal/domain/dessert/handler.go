package dessert

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

// List handles GET /api/v1/desserts
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /api/v1/desserts/:id
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
		response.Error(c, http.StatusNotFound, "DESSERT_NOT_FOUND", "Dessert not found")
		return
	}
	response.Success(c, http.StatusOK, item)
}

// ListForIngredient handles GET /api/v1/ingredients/:id/desserts
func (h *Handler) ListForIngredient(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	items, err := h.service.ListForIngredient(c.Request.Context(), id)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create handles POST /api/v1/desserts
func (h *Handler) Create(c *gin.Context) {
	var req DessertDTO
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

// Update handles PUT /api/v1/desserts/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	var req DessertDTO
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

// Delete handles DELETE /api/v1/desserts/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	response.FromService(c, res, err)
}

// LinkIngredient handles POST /api/v1/desserts/:id/ingredients/:ingredientId
func (h *Handler) LinkIngredient(c *gin.Context) {
	dessertID, ok := request.PathID(c, "id")
	if !ok {
		return
	}
	ingredientID, ok := request.PathID(c, "ingredientId")
	if !ok {
		return
	}

	res, err := h.service.LinkIngredient(c.Request.Context(), dessertID, ingredientID)
	response.FromService(c, res, err)
}

// UnlinkIngredient handles DELETE /api/v1/desserts/:id/ingredients/:ingredientId
func (h *Handler) UnlinkIngredient(c *gin.Context) {
	dessertID, ok := request.PathID(c, "id")
	if !ok {
		return
	}
	ingredientID, ok := request.PathID(c, "ingredientId")
	if !ok {
		return
	}

	res, err := h.service.UnlinkIngredient(c.Request.Context(), dessertID, ingredientID)
	response.FromService(c, res, err)
}
