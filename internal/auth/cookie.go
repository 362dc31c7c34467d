package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookiePolicy switches the session cookie's cross-site attributes
// between deployment profiles. Production serves a cross-origin SPA, so
// it needs Secure + SameSite=None; development keeps Strict.
type CookiePolicy struct {
	Production bool
}

func (p CookiePolicy) sameSite() http.SameSite {
	if p.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// SetSessionCookie attaches the signed token as an HTTP-only cookie.
func (p CookiePolicy) SetSessionCookie(c echo.Context, token string, maxAge time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: p.sameSite(),
	})
}

// ClearSessionCookie revokes the client's copy of the session. It is
// idempotent and always succeeds; nothing is tracked server-side.
func (p CookiePolicy) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: p.sameSite(),
	})
}
