package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
	"dessertbook/internal/domain/dessert"
	"dessertbook/internal/domain/ingredient"
	"dessertbook/internal/pkg/validator"
)

func (p *Pages) IngredientList(c *gin.Context) {
	items, err := p.svc.Ingredients.List(c.Request.Context())
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, http.StatusOK, "ingredients/list", "Ingredients", gin.H{"Ingredients": items})
}

// IngredientDetails shows an ingredient with the desserts that use it.
func (p *Pages) IngredientDetails(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	ing, err := p.svc.Ingredients.Find(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if ing == nil {
		p.notFound(c, "Could not find ingredient")
		return
	}
	desserts, err := p.svc.Desserts.ListForIngredient(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	instructions, err := p.svc.Instructions.ListForIngredient(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}

	p.render(c, http.StatusOK, "ingredients/details", ing.Name, gin.H{
		"Ingredient":   ing,
		"Desserts":     desserts,
		"Instructions": instructions,
	})
}

func (p *Pages) IngredientNew(c *gin.Context) {
	p.ingredientForm(c, http.StatusOK, "New ingredient", "/ingredients", ingredient.IngredientDTO{}, nil)
}

func (p *Pages) IngredientCreate(c *gin.Context) {
	var dto ingredient.IngredientDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if errs := validator.Validate(&dto); errs != nil {
		p.ingredientForm(c, http.StatusUnprocessableEntity, "New ingredient", "/ingredients", dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Ingredients.Add(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusCreated) {
		redirect(c, "/ingredients/%d", res.CreatedID)
	}
}

func (p *Pages) IngredientEdit(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ing, err := p.svc.Ingredients.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if ing == nil {
		p.notFound(c, domain.MsgIngredientNotFound)
		return
	}
	p.ingredientForm(c, http.StatusOK, "Edit "+ing.Name, c.Request.URL.Path, *ing, nil)
}

func (p *Pages) IngredientUpdate(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	var dto ingredient.IngredientDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if dto.ID != 0 && dto.ID != id {
		p.renderError(c, http.StatusBadRequest, ingredient.ErrIDMismatch.Error())
		return
	}
	dto.ID = id
	if errs := validator.Validate(&dto); errs != nil {
		p.ingredientForm(c, http.StatusUnprocessableEntity, "Edit ingredient", c.Request.URL.Path, dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Ingredients.Update(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusUpdated) {
		redirect(c, "/ingredients/%d", id)
	}
}

func (p *Pages) IngredientConfirmDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ing, err := p.svc.Ingredients.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if ing == nil {
		p.notFound(c, domain.MsgIngredientNotFound)
		return
	}
	p.confirmDelete(c, "Delete ingredient", ing.Name, c.Request.URL.Path, "/ingredients/"+c.Param("id"))
}

func (p *Pages) IngredientDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	res, err := p.svc.Ingredients.Delete(c.Request.Context(), id)
	if p.completed(c, res, err, domain.StatusDeleted) {
		c.Redirect(http.StatusSeeOther, "/ingredients")
	}
}

func (p *Pages) IngredientLinkForm(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	ing, err := p.svc.Ingredients.Find(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if ing == nil {
		p.notFound(c, domain.MsgIngredientNotFound)
		return
	}
	linked, err := p.svc.Desserts.ListForIngredient(ctx, id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	all, err := p.svc.Desserts.List(ctx)
	if err != nil {
		p.internalError(c, err)
		return
	}

	seen := make(map[int64]bool, len(linked))
	for _, d := range linked {
		seen[d.ID] = true
	}
	available := make([]dessert.DessertDTO, 0, len(all))
	for _, d := range all {
		if !seen[d.ID] {
			available = append(available, d)
		}
	}

	p.render(c, http.StatusOK, "ingredients/link", "Desserts using "+ing.Name, gin.H{
		"Ingredient": ing,
		"Linked":     linked,
		"Available":  available,
	})
}

func (p *Pages) IngredientLink(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	dessertID, ok := formID(c, "dessert_id")
	if !ok {
		p.renderError(c, http.StatusBadRequest, "Choose a dessert.")
		return
	}
	res, err := p.svc.Ingredients.LinkDessert(c.Request.Context(), id, dessertID)
	if p.completed(c, res, err, domain.StatusCreated) {
		redirect(c, "/ingredients/%d/link", id)
	}
}

func (p *Pages) IngredientUnlink(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	dessertID, ok := formID(c, "dessert_id")
	if !ok {
		p.renderError(c, http.StatusBadRequest, "Choose a dessert.")
		return
	}
	res, err := p.svc.Ingredients.UnlinkDessert(c.Request.Context(), id, dessertID)
	if p.completed(c, res, err, domain.StatusDeleted) {
		redirect(c, "/ingredients/%d/link", id)
	}
}

func (p *Pages) ingredientForm(c *gin.Context, status int, title, action string, dto ingredient.IngredientDTO, errs []string) {
	p.render(c, status, "ingredients/form", title, gin.H{
		"Ingredient": dto,
		"Action":     action,
		"Errors":     errs,
	})
}
