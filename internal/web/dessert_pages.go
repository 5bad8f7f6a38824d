package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
	"dessertbook/internal/domain/dessert"
	"dessertbook/internal/domain/ingredient"
	"dessertbook/internal/pkg/validator"
)

func (p *Pages) DessertList(c *gin.Context) {
	items, err := p.svc.Desserts.List(c.Request.Context())
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, http.StatusOK, "desserts/list", "Desserts", gin.H{"Desserts": items})
}

// DessertDetails shows a dessert with its ingredients, recipe lines and reviews.
func (p *Pages) DessertDetails(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	d, err := p.svc.Desserts.Find(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if d == nil {
		p.notFound(c, "Could not find dessert")
		return
	}
	ingredients, err := p.svc.Ingredients.ListForDessert(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	instructions, err := p.svc.Instructions.ListForDessert(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	reviews, err := p.svc.Reviews.ListForDessert(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}

	p.render(c, http.StatusOK, "desserts/details", d.Name, gin.H{
		"Dessert":      d,
		"Ingredients":  ingredients,
		"Instructions": instructions,
		"Reviews":      reviews,
	})
}

func (p *Pages) DessertNew(c *gin.Context) {
	p.dessertForm(c, http.StatusOK, "New dessert", "/desserts", dessert.DessertDTO{}, nil)
}

func (p *Pages) DessertCreate(c *gin.Context) {
	var dto dessert.DessertDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if errs := validator.Validate(&dto); errs != nil {
		p.dessertForm(c, http.StatusUnprocessableEntity, "New dessert", "/desserts", dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Desserts.Add(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusCreated) {
		redirect(c, "/desserts/%d", res.CreatedID)
	}
}

func (p *Pages) DessertEdit(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	d, err := p.svc.Desserts.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if d == nil {
		p.notFound(c, domain.MsgDessertNotFound)
		return
	}
	p.dessertForm(c, http.StatusOK, "Edit "+d.Name, c.Request.URL.Path, *d, nil)
}

func (p *Pages) DessertUpdate(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	var dto dessert.DessertDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if dto.ID != 0 && dto.ID != id {
		p.renderError(c, http.StatusBadRequest, dessert.ErrIDMismatch.Error())
		return
	}
	dto.ID = id
	if errs := validator.Validate(&dto); errs != nil {
		p.dessertForm(c, http.StatusUnprocessableEntity, "Edit dessert", c.Request.URL.Path, dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Desserts.Update(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusUpdated) {
		redirect(c, "/desserts/%d", id)
	}
}

func (p *Pages) DessertConfirmDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	d, err := p.svc.Desserts.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if d == nil {
		p.notFound(c, domain.MsgDessertNotFound)
		return
	}
	p.confirmDelete(c, "Delete dessert", d.Name, c.Request.URL.Path, "/desserts/"+c.Param("id"))
}

func (p *Pages) DessertDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	res, err := p.svc.Desserts.Delete(c.Request.Context(), id)
	if p.completed(c, res, err, domain.StatusDeleted) {
		c.Redirect(http.StatusSeeOther, "/desserts")
	}
}

// DessertLinkForm lists linked ingredients and offers the rest for linking.
func (p *Pages) DessertLinkForm(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	d, err := p.svc.Desserts.Find(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if d == nil {
		p.notFound(c, domain.MsgDessertNotFound)
		return
	}
	linked, err := p.svc.Ingredients.ListForDessert(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	all, err := p.svc.Ingredients.List(ctx)
	if err != nil {
		p.internalError(c, err)
		return
	}

	seen := make(map[int64]bool, len(linked))
	for _, i := range linked {
		seen[i.ID] = true
	}
	available := make([]ingredient.IngredientDTO, 0, len(all))
	for _, i := range all {
		if !seen[i.ID] {
			available = append(available, i)
		}
	}

	p.render(c, http.StatusOK, "desserts/link", "Ingredients of "+d.Name, gin.H{
		"Dessert":   d,
		"Linked":    linked,
		"Available": available,
	})
}

func (p *Pages) DessertLink(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ingredientID, ok := formID(c, "ingredient_id")
	if !ok {
		p.renderError(c, http.StatusBadRequest, "Choose an ingredient.")
		return
	}
	res, err := p.svc.Desserts.LinkIngredient(c.Request.Context(), id, ingredientID)
	if p.completed(c, res, err, domain.StatusCreated) {
		redirect(c, "/desserts/%d/link", id)
	}
}

func (p *Pages) DessertUnlink(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ingredientID, ok := formID(c, "ingredient_id")
	if !ok {
		p.renderError(c, http.StatusBadRequest, "Choose an ingredient.")
		return
	}
	res, err := p.svc.Desserts.UnlinkIngredient(c.Request.Context(), id, ingredientID)
	if p.completed(c, res, err, domain.StatusDeleted) {
		redirect(c, "/desserts/%d/link", id)
	}
}

func (p *Pages) dessertForm(c *gin.Context, status int, title, action string, dto dessert.DessertDTO, errs []string) {
	p.render(c, status, "desserts/form", title, gin.H{
		"Dessert": dto,
		"Action":  action,
		"Errors":  errs,
	})
}
