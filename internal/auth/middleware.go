package auth

import (
	"errors"
	"net/http"

	"inventory-service/internal/repository"
	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	tokens   *TokenService
	userRepo repository.UserRepository
}

func NewMiddleware(tokens *TokenService, userRepo repository.UserRepository) *Middleware {
	return &Middleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireSession reads the session cookie, verifies it, and stashes the
// decoded claims for downstream handlers. Missing, malformed and expired
// tokens are indistinguishable to the caller.
func (m *Middleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return respondMessage(c, http.StatusUnauthorized, msgUnauthorizedAccess)
			}

			claims, err := m.tokens.Verify(cookie.Value)
			if err != nil {
				return respondMessage(c, http.StatusUnauthorized, msgUnauthorizedAccess)
			}

			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

// RequireAdmin resolves the authenticated identity to its persisted role.
// Must run after RequireSession.
func (m *Middleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := GetClaims(c)
			if err != nil {
				return respondMessage(c, http.StatusUnauthorized, msgUnauthorizedAccess)
			}

			u, err := m.userRepo.GetByEmail(c.Request().Context(), claims.Email)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}

			if !u.IsAdmin() {
				return respondMessage(c, http.StatusForbidden, msgForbiddenAccess)
			}

			return next(c)
		}
	}
}

// RequireSelf denies access when the authenticated email does not match
// the resource's owning email from the path. Callers translate the
// sentinel into their response shape.
func RequireSelf(c echo.Context) error {
	claims, err := GetClaims(c)
	if err != nil {
		return err
	}

	if c.Param(paramEmail) != claims.Email {
		return apperrors.Forbidden(msgForbiddenSelfOnly)
	}

	return nil
}

func GetClaims(c echo.Context) (*SessionClaims, error) {
	claims, ok := c.Get(ContextKeyClaims).(*SessionClaims)
	if !ok || claims == nil {
		return nil, apperrors.Unauthorized(msgClaimsNotInContext)
	}
	return claims, nil
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}
