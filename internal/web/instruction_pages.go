package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
	"dessertbook/internal/domain/instruction"
	"dessertbook/internal/pkg/validator"
)

func (p *Pages) InstructionList(c *gin.Context) {
	items, err := p.svc.Instructions.List(c.Request.Context())
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, http.StatusOK, "instructions/list", "Instructions", gin.H{"Instructions": items})
}

func (p *Pages) InstructionDetails(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	in, err := p.svc.Instructions.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if in == nil {
		p.notFound(c, "Could not find instruction")
		return
	}
	p.render(c, http.StatusOK, "instructions/details", in.DessertName+": "+in.IngredientName, gin.H{"Instruction": in})
}

func (p *Pages) InstructionNew(c *gin.Context) {
	p.instructionForm(c, http.StatusOK, "New instruction", "/instructions", instruction.InstructionDTO{}, nil)
}

func (p *Pages) InstructionCreate(c *gin.Context) {
	var dto instruction.InstructionDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if errs := validator.Validate(&dto); errs != nil {
		p.instructionForm(c, http.StatusUnprocessableEntity, "New instruction", "/instructions", dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Instructions.Add(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusCreated) {
		redirect(c, "/instructions/%d", res.CreatedID)
	}
}

func (p *Pages) InstructionEdit(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	in, err := p.svc.Instructions.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if in == nil {
		p.notFound(c, domain.MsgInstructionNotFound)
		return
	}
	p.instructionForm(c, http.StatusOK, "Edit instruction", c.Request.URL.Path, *in, nil)
}

func (p *Pages) InstructionUpdate(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	var dto instruction.InstructionDTO
	if err := c.ShouldBind(&dto); err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}
	if dto.ID != 0 && dto.ID != id {
		p.renderError(c, http.StatusBadRequest, instruction.ErrIDMismatch.Error())
		return
	}
	dto.ID = id
	if errs := validator.Validate(&dto); errs != nil {
		p.instructionForm(c, http.StatusUnprocessableEntity, "Edit instruction", c.Request.URL.Path, dto, validationMessages(errs))
		return
	}

	res, err := p.svc.Instructions.Update(c.Request.Context(), dto)
	if p.completed(c, res, err, domain.StatusUpdated) {
		redirect(c, "/instructions/%d", id)
	}
}

func (p *Pages) InstructionConfirmDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	in, err := p.svc.Instructions.Find(c.Request.Context(), id)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if in == nil {
		p.notFound(c, domain.MsgInstructionNotFound)
		return
	}
	p.confirmDelete(c, "Delete instruction", in.IngredientName+" in "+in.DessertName, c.Request.URL.Path, "/instructions/"+c.Param("id"))
}

func (p *Pages) InstructionDelete(c *gin.Context) {
	id, ok := p.pathID(c)
	if !ok {
		return
	}
	res, err := p.svc.Instructions.Delete(c.Request.Context(), id)
	if p.completed(c, res, err, domain.StatusDeleted) {
		c.Redirect(http.StatusSeeOther, "/instructions")
	}
}

// instructionForm needs both catalogs for the dessert and ingredient pickers.
func (p *Pages) instructionForm(c *gin.Context, status int, title, action string, dto instruction.InstructionDTO, errs []string) {
	ctx := c.Request.Context()
	desserts, err := p.svc.Desserts.List(ctx)
	if err != nil {
		p.internalError(c, err)
		return
	}
	ingredients, err := p.svc.Ingredients.List(ctx)
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, status, "instructions/form", title, gin.H{
		"Instruction": dto,
		"Desserts":    desserts,
		"Ingredients": ingredients,
		"Action":      action,
		"Errors":      errs,
	})
}
