package handler

import (
	"errors"
	"net/http"

	"inventory-service/internal/domain/shop"
	"inventory-service/internal/repository"
	apperrors "inventory-service/pkg/errors"
	"inventory-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type ShopHandler struct {
	shopRepo repository.ShopRepository
}

func NewShopHandler(shopRepo repository.ShopRepository) *ShopHandler {
	return &ShopHandler{shopRepo: shopRepo}
}

func (h *ShopHandler) Get(c echo.Context) error {
	s, err := h.shopRepo.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	return respondMaybe(c, s, err)
}

func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.shopRepo.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shops)
}

// Create opens a shop with the fixed starting quota. One shop per email;
// the duplicate case soft-fails with a message, not an error status.
func (h *ShopHandler) Create(c echo.Context) error {
	var s shop.Shop
	if err := c.Bind(&s); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if err := validator.Email(s.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.shopRepo.Create(c.Request().Context(), &s)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && errors.Is(err, apperrors.ErrConflict) {
			return respondMessage(c, http.StatusOK, appErr.Message)
		}
		return err
	}

	return respondInsert(c, id)
}

// DecrementLimit consumes one unit of product quota. The new value is
// recomputed at the store from the persisted one, never taken from the
// request body.
func (h *ShopHandler) DecrementLimit(c echo.Context) error {
	s, err := h.shopRepo.DecrementLimit(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		var appErr *apperrors.AppError
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return c.JSON(http.StatusOK, nil)
		case errors.As(err, &appErr) && errors.Is(err, apperrors.ErrQuotaExhausted):
			return respondError(c, http.StatusConflict, appErr.Message)
		}
		return err
	}

	return c.JSON(http.StatusOK, s)
}

type OverwriteLimitRequest struct {
	NewProductLimit int `json:"newProductLimit"`
}

// OverwriteLimit replaces the quota outright, used when a plan upgrade
// grants a fresh allowance.
func (h *ShopHandler) OverwriteLimit(c echo.Context) error {
	var req OverwriteLimitRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	modified, err := h.shopRepo.OverwriteLimit(c.Request().Context(), c.Param(paramEmail), req.NewProductLimit)
	if err != nil {
		return err
	}

	return respondModified(c, modified)
}

type SetLimitRequest struct {
	Limit int `json:"limit"`
}

// SetLimitByID overwrites the quota addressed by shop id rather than
// email.
func (h *ShopHandler) SetLimitByID(c echo.Context) error {
	var req SetLimitRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	modified, err := h.shopRepo.SetLimitByID(c.Request().Context(), c.Param(paramID), req.Limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}

	return respondModified(c, modified)
}
