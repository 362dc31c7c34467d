package handler

import (
	"net/http"

	"inventory-service/internal/auth"
	"inventory-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	tokens *auth.TokenService
	cookie auth.CookiePolicy
}

func NewAuthHandler(tokens *auth.TokenService, cookie auth.CookiePolicy) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		cookie: cookie,
	}
}

type IssueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IssueToken signs the client-supplied identity claims into a session
// cookie. Identity is asserted, not proven; the store-backed role check
// happens on each protected request.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		return err
	}

	h.cookie.SetSessionCookie(c, token, h.tokens.Expiry())

	return c.JSON(http.StatusOK, map[string]bool{jsonKeySuccess: true})
}

// Logout clears the cookie. Idempotent; an already-expired or missing
// session still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookie.ClearSessionCookie(c)

	return c.JSON(http.StatusOK, map[string]bool{jsonKeySuccess: true})
}
