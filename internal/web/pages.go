package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain"
	"dessertbook/internal/domain/auth"
	"dessertbook/internal/domain/dessert"
	"dessertbook/internal/domain/ingredient"
	"dessertbook/internal/domain/instruction"
	"dessertbook/internal/domain/review"
	"dessertbook/internal/pkg/request"
)

// LoginPath is where PageAuth sends anonymous visitors.
const LoginPath = "/account/login"

type Services struct {
	Desserts     *dessert.Service
	Ingredients  *ingredient.Service
	Instructions *instruction.Service
	Reviews      *review.Service
	Auth         *auth.Service
}

// Pages serves the HTML front end over the same services as the JSON API.
type Pages struct {
	svc    Services
	cookie auth.CookieSettings
}

func NewPages(svc Services, cookie auth.CookieSettings) *Pages {
	return &Pages{svc: svc, cookie: cookie}
}

// RegisterPublicRoutes registers read-only pages and the account forms.
func (p *Pages) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/desserts") })

	r.GET("/desserts", p.DessertList)
	r.GET("/desserts/:id", p.DessertDetails)
	r.GET("/ingredients", p.IngredientList)
	r.GET("/ingredients/:id", p.IngredientDetails)
	r.GET("/instructions", p.InstructionList)
	r.GET("/instructions/:id", p.InstructionDetails)
	r.GET("/reviews", p.ReviewList)
	r.GET("/reviews/:id", p.ReviewDetails)

	r.GET("/account/login", p.LoginForm)
	r.POST("/account/login", p.Login)
	r.GET("/account/register", p.RegisterForm)
	r.POST("/account/register", p.Register)
	r.POST("/account/logout", p.Logout)
}

// RegisterProtectedRoutes registers pages that change data. The group is
// expected to carry middleware.PageAuth.
func (p *Pages) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/desserts/new", p.DessertNew)
	r.POST("/desserts", p.DessertCreate)
	r.GET("/desserts/:id/edit", p.DessertEdit)
	r.POST("/desserts/:id/edit", p.DessertUpdate)
	r.GET("/desserts/:id/delete", p.DessertConfirmDelete)
	r.POST("/desserts/:id/delete", p.DessertDelete)
	r.GET("/desserts/:id/link", p.DessertLinkForm)
	r.POST("/desserts/:id/link", p.DessertLink)
	r.POST("/desserts/:id/unlink", p.DessertUnlink)

	r.GET("/ingredients/new", p.IngredientNew)
	r.POST("/ingredients", p.IngredientCreate)
	r.GET("/ingredients/:id/edit", p.IngredientEdit)
	r.POST("/ingredients/:id/edit", p.IngredientUpdate)
	r.GET("/ingredients/:id/delete", p.IngredientConfirmDelete)
	r.POST("/ingredients/:id/delete", p.IngredientDelete)
	r.GET("/ingredients/:id/link", p.IngredientLinkForm)
	r.POST("/ingredients/:id/link", p.IngredientLink)
	r.POST("/ingredients/:id/unlink", p.IngredientUnlink)

	r.GET("/instructions/new", p.InstructionNew)
	r.POST("/instructions", p.InstructionCreate)
	r.GET("/instructions/:id/edit", p.InstructionEdit)
	r.POST("/instructions/:id/edit", p.InstructionUpdate)
	r.GET("/instructions/:id/delete", p.InstructionConfirmDelete)
	r.POST("/instructions/:id/delete", p.InstructionDelete)

	r.GET("/reviews/new", p.ReviewNew)
	r.POST("/reviews", p.ReviewCreate)
	r.GET("/reviews/:id/edit", p.ReviewEdit)
	r.POST("/reviews/:id/edit", p.ReviewUpdate)
	r.GET("/reviews/:id/delete", p.ReviewConfirmDelete)
	r.POST("/reviews/:id/delete", p.ReviewDelete)
	r.POST("/reviews/:id/image", p.ReviewImage)
}

func (p *Pages) render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["UserEmail"] = c.GetString("user_email")
	c.HTML(status, name, data)
}

func (p *Pages) renderError(c *gin.Context, status int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{http.StatusText(status)}
	}
	p.render(c, status, "error", "Something went wrong", gin.H{"Errors": messages})
}

func (p *Pages) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	p.renderError(c, http.StatusInternalServerError, "The request could not be completed.")
}

func (p *Pages) notFound(c *gin.Context, message string) {
	p.renderError(c, http.StatusNotFound, message)
}

func (p *Pages) confirmDelete(c *gin.Context, title, subject, action, cancel string) {
	p.render(c, http.StatusOK, "confirm_delete", title, gin.H{
		"Subject": subject,
		"Action":  action,
		"Cancel":  cancel,
	})
}

// completed reports whether a mutating call ended with want, rendering the
// error page otherwise.
func (p *Pages) completed(c *gin.Context, res domain.ServiceResponse, err error, want domain.ServiceStatus) bool {
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			p.renderError(c, http.StatusConflict, "The record was changed by someone else. Reload and try again.")
			return false
		}
		p.renderError(c, http.StatusInternalServerError, "The request could not be completed.")
		return false
	}
	if res.Is(want) {
		return true
	}
	status := http.StatusInternalServerError
	if res.Is(domain.StatusNotFound) {
		status = http.StatusNotFound
	}
	log.Printf("page operation not completed: path=%s status=%s messages=%v", c.Request.URL.Path, res.Status, res.Messages)
	p.renderError(c, status, res.Messages...)
	return false
}

func redirect(c *gin.Context, format string, id int64) {
	c.Redirect(http.StatusSeeOther, fmt.Sprintf(format, id))
}

// pathID parses the :id route parameter, rendering a 400 page on failure.
func (p *Pages) pathID(c *gin.Context) (int64, bool) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		p.renderError(c, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

// formID reads a positive id from a posted form field.
func formID(c *gin.Context, field string) (int64, bool) {
	id, err := request.ParseID(c.PostForm(field))
	return id, err == nil
}

func validationMessages(errs map[string]string) []string {
	out := make([]string, 0, len(errs))
	for field, tag := range errs {
		out = append(out, field+" is invalid ("+tag+")")
	}
	sort.Strings(out)
	return out
}
