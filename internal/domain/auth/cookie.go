package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/pkg/jwt"
)

// CookieSettings controls how the auth cookie is written.
type CookieSettings struct {
	Secure   bool
	SameSite string
	Path     string
	MaxAge   int
}

func (cs CookieSettings) Set(c *gin.Context, token string) {
	c.SetSameSite(parseSameSite(cs.SameSite))
	c.SetCookie(jwt.CookieName, token, cs.MaxAge, cs.path(), "", cs.Secure, true)
}

func (cs CookieSettings) Clear(c *gin.Context) {
	c.SetSameSite(parseSameSite(cs.SameSite))
	c.SetCookie(jwt.CookieName, "", -1, cs.path(), "", cs.Secure, true)
}

func (cs CookieSettings) path() string {
	if cs.Path == "" {
		return "/"
	}
	return cs.Path
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
