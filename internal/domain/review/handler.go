package review

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
	"dessertbook/internal/metrics"
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

// List handles GET /api/v1/reviews
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /api/v1/reviews/:id
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
		response.Error(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
		return
	}
	response.Success(c, http.StatusOK, item)
}

// ListForDessert handles GET /api/v1/desserts/:id/reviews
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

// Create handles POST /api/v1/reviews
func (h *Handler) Create(c *gin.Context) {
	var req ReviewDTO
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

// Update handles PUT /api/v1/reviews/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	var req ReviewDTO
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

// Delete handles DELETE /api/v1/reviews/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	response.FromService(c, res, err)
}

// UpdateImage handles PUT /api/v1/reviews/:id/image (multipart field "file")
func (h *Handler) UpdateImage(c *gin.Context) {
	id, ok := request.PathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.CustomError(c, http.StatusBadRequest, "FILE_REQUIRED", ErrNoFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	defer file.Close()

	res, err := h.service.UpdateImage(c.Request.Context(), id, ImageUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	label := string(res.Status)
	if err != nil {
		label = "Failed"
	}
	metrics.ReviewImageUploads.WithLabelValues(label).Inc()

	if err == nil && res.Is(domain.StatusError) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "INVALID_IMAGE", strings.Join(res.Messages, " "), res.Messages)
		return
	}
	response.FromService(c, res, err)
}
