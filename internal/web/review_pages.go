package web

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
	"dessertbook/internal/domain/review"
	"dessertbook/internal/metrics"
	"dessertbook/internal/pkg/request"
	"dessertbook/internal/pkg/validator"
)

func (p *Pages) ReviewList(c *gin.Context) {
	items, err := p.svc.Reviews.List(c.Request.Context())
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, http.StatusOK, "reviews/list", "Reviews", gin.H{"Reviews": items})
}

func (p *Pages) ReviewDetails(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	rv, err := p.svc.Reviews.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if rv == nil {
		p.notFound(c, "Could not find review")
		return
	}
	p.render(c, http.StatusOK, "reviews/details", "Review #"+rv.Number, gin.H{"Review": rv})
}

// ReviewNew preselects the dessert given as ?dessertId=.
func (p *Pages) ReviewNew(c *gin.Context) {
	var dto review.ReviewDTO
	if id, err := request.ParseID(c.Query("dessertId")); err == nil {
		dto.DessertID = id
	}
	p.reviewForm(c, http.StatusOK, "New review", "/reviews", dto, nil)
}

func (p *Pages) ReviewCreate(c *gin.Context) {
	var dto review.ReviewDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if dto.User == "" {
		dto.User = c.GetString("user_email")
	}
	if errs := validator.Validate(&dto); errs != nil {
		p.reviewForm(c, http.StatusUnprocessableEntity, "New review", "/reviews", dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Reviews.Add(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusCreated) {
		redirect(c, "/reviews/%d", res.CreatedID)
	}
}

func (p *Pages) ReviewEdit(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	rv, err := p.svc.Reviews.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if rv == nil {
		p.notFound(c, domain.MsgReviewNotFound)
		return
	}
	p.reviewForm(c, http.StatusOK, "Edit review", c.Request.URL.Path, *rv, nil)
}

func (p *Pages) ReviewUpdate(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	var dto review.ReviewDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if dto.ID != 0 && dto.ID != id {
		p.renderError(c, http.StatusBadRequest, review.ErrIDMismatch.Error())
		return
	}
	dto.ID = id
	if errs := validator.Validate(&dto); errs != nil {
		p.reviewForm(c, http.StatusUnprocessableEntity, "Edit review", c.Request.URL.Path, dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Reviews.Update(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusUpdated) {
		redirect(c, "/reviews/%d", id)
	}
}

func (p *Pages) ReviewConfirmDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	rv, err := p.svc.Reviews.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if rv == nil {
		p.notFound(c, domain.MsgReviewNotFound)
		return
	}
	p.confirmDelete(c, "Delete review", "review #"+rv.Number, c.Request.URL.Path, "/reviews/"+c.Param("id"))
}

func (p *Pages) ReviewDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	res, err := p.svc.Reviews.Delete(c.Request.Context(), id)
	if p.completed(c, res, err, domain.StatusDeleted) {
		c.Redirect(http.StatusSeeOther, "/reviews")
	}
}

// ReviewImage replaces the review photo from the edit page upload form. A
// missing file is passed on as an empty upload so the review is still checked.
func (p *Pages) ReviewImage(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}

	var upload review.ImageUpload
	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		var file multipart.File
		file, err = fileHeader.Open()
		if err != nil {
			p.internalError(c, err)
			return
		}
		defer file.Close()
		upload = review.ImageUpload{Filename: fileHeader.Filename, Size: fileHeader.Size, Body: file}
	case errors.Is(err, http.ErrMissingFile):
	default:
		p.renderError(c, http.StatusBadRequest, "Invalid upload.")
		return
	}

	res, err := p.svc.Reviews.UpdateImage(c.Request.Context(), id, upload)
	label := string(res.Status)
	if err != nil {
		label = "Failed"
	}
	metrics.ReviewImageUploads.WithLabelValues(label).Inc()

	if err == nil && res.Is(domain.StatusError) {
		p.renderError(c, http.StatusUnprocessableEntity, res.Messages...)
		return
	}
	if p.completed(c, res, err, domain.StatusUpdated) {
		redirect(c, "/reviews/%d", id)
	}
}

func (p *Pages) reviewForm(c *gin.Context, status int, title, action string, dto review.ReviewDTO, errs []string) {
	desserts, err := p.svc.Desserts.List(c.Request.Context())
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, status, "reviews/form", title, gin.H{
		"Review":   dto,
		"Desserts": desserts,
		"Action":   action,
		"Errors":   errs,
	})
}
