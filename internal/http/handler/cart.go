package handler

import (
	"errors"
	"net/http"

	"inventory-service/internal/domain/cart"
	"inventory-service/internal/repository"
	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartRepo repository.CartRepository
}

func NewCartHandler(cartRepo repository.CartRepository) *CartHandler {
	return &CartHandler{cartRepo: cartRepo}
}

func (h *CartHandler) Add(c echo.Context) error {
	var entry cart.Entry
	if err := c.Bind(&entry); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	id, err := h.cartRepo.Add(c.Request().Context(), &entry)
	if err != nil {
		return err
	}

	return respondInsert(c, id)
}

func (h *CartHandler) ListByEmail(c echo.Context) error {
	entries, err := h.cartRepo.ListByEmail(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entries)
}

// DeleteSold removes the cart entry whose sale was just finalized.
func (h *CartHandler) DeleteSold(c echo.Context) error {
	deleted, err := h.cartRepo.Delete(c.Request().Context(), c.Param(paramID))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}

	return respondDeleted(c, deleted)
}
