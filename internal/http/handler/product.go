package handler

import (
	"errors"
	"net/http"

	"inventory-service/internal/domain/product"
	"inventory-service/internal/repository"
	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productRepo repository.ProductRepository
}

func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

func (h *ProductHandler) ListAll(c echo.Context) error {
	products, err := h.productRepo.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListByEmail(c echo.Context) error {
	products, err := h.productRepo.ListByEmail(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.productRepo.GetByID(c.Request().Context(), c.Param(paramID))
	if err != nil && errors.Is(err, apperrors.ErrBadRequest) {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respondMaybe(c, p, err)
}

// Create inserts the product. Quota consumption is the separate
// updateLimit call the client sequences after this one.
func (h *ProductHandler) Create(c echo.Context) error {
	var p product.Product
	if err := c.Bind(&p); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	id, err := h.productRepo.Create(c.Request().Context(), &p)
	if err != nil {
		return err
	}

	return respondInsert(c, id)
}

// Update merges arbitrary caller-supplied fields over the document.
func (h *ProductHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	modified, err := h.productRepo.UpdateFields(c.Request().Context(), c.Param(paramID), fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}

	return respondModified(c, modified)
}

// SetSaleFigures writes the absolute quantity/saleCount a finalized sale
// leaves behind, upserting when the id is unknown.
func (h *ProductHandler) SetSaleFigures(c echo.Context) error {
	var figures product.SaleFigures
	if err := c.Bind(&figures); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	modified, err := h.productRepo.SetSaleFigures(c.Request().Context(), c.Param(paramID), figures)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}

	return respondModified(c, modified)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	deleted, err := h.productRepo.Delete(c.Request().Context(), c.Param(paramID))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}

	return respondDeleted(c, deleted)
}
