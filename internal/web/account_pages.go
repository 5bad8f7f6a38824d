package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/domain/auth"
	"dessertbook/internal/pkg/validator"
)

const homePath = "/desserts"

func (p *Pages) LoginForm(c *gin.Context) {
	p.render(c, http.StatusOK, "account/login", "Log in", gin.H{
		"ReturnURL": safeReturnURL(c.Query("returnUrl")),
		"Email":     "",
		"Errors":    nil,
	})
}

// Login signs the user in with the auth cookie and goes back to returnUrl.
func (p *Pages) Login(c *gin.Context) {
	var req auth.LoginRequest
	_ = c.ShouldBind(&req)
	returnURL := safeReturnURL(c.PostForm("returnUrl"))

	fail := func(status int, messages ...string) {
		p.render(c, status, "account/login", "Log in", gin.H{
			"ReturnURL": returnURL,
			"Email":     req.Email,
			"Errors":    messages,
		})
	}

	if errs := validator.Validate(&req); errs != nil {
		fail(http.StatusUnprocessableEntity, validationMessages(errs)...)
		return
	}
	result, err := p.svc.Auth.Login(c.Request.Context(), req)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		fail(http.StatusUnauthorized, "Email or password is incorrect.")
		return
	}
	if err != nil {
		p.internalError(c, err)
		return
	}

	p.cookie.Set(c, result.Token)
	log.Printf("page login: user_id=%d", result.User.ID)
	c.Redirect(http.StatusSeeOther, returnURL)
}

func (p *Pages) RegisterForm(c *gin.Context) {
	p.render(c, http.StatusOK, "account/register", "Register", gin.H{"Email": "", "Name": "", "Errors": nil})
}

// Register creates the account and signs it in.
func (p *Pages) Register(c *gin.Context) {
	var req auth.RegisterRequest
	_ = c.ShouldBind(&req)

	fail := func(status int, messages ...string) {
		p.render(c, status, "account/register", "Register", gin.H{
			"Email":  req.Email,
			"Name":   req.Name,
			"Errors": messages,
		})
	}

	if errs := validator.Validate(&req); errs != nil {
		fail(http.StatusUnprocessableEntity, validationMessages(errs)...)
		return
	}
	ctx := c.Request.Context()
	if _, err := p.svc.Auth.Register(ctx, req); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			fail(http.StatusConflict, "This email is already registered.")
			return
		}
		p.internalError(c, err)
		return
	}

	result, err := p.svc.Auth.Login(ctx, auth.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.cookie.Set(c, result.Token)
	c.Redirect(http.StatusSeeOther, homePath)
}

func (p *Pages) Logout(c *gin.Context) {
	p.cookie.Clear(c)
	c.Redirect(http.StatusSeeOther, homePath)
}

// safeReturnURL keeps redirects on this site.
func safeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return homePath
	}
	return raw
}
