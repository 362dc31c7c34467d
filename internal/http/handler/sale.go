package handler

import (
	"net/http"
	"time"

	"inventory-service/internal/domain/sale"
	"inventory-service/internal/repository"

	"github.com/labstack/echo/v4"
)

type SaleHandler struct {
	saleRepo repository.SaleRepository
}

func NewSaleHandler(saleRepo repository.SaleRepository) *SaleHandler {
	return &SaleHandler{saleRepo: saleRepo}
}

// ListAll is the admin's unpaginated global sales view.
func (h *SaleHandler) ListAll(c echo.Context) error {
	records, err := h.saleRepo.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, records)
}

// ListPage serves the paginated view, newest first. An email query
// narrows to one manager's sales; without it this is the global view.
func (h *SaleHandler) ListPage(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidPage)
	}

	records, total, err := h.saleRepo.ListPage(c.Request().Context(), c.QueryParam(queryEmail), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		jsonKeyResult:     records,
		jsonKeyTotalSales: total,
	})
}

// Add records a finalized sale. A missing soldDate is stamped with the
// server clock so descending sort stays meaningful.
func (h *SaleHandler) Add(c echo.Context) error {
	var rec sale.Record
	if err := c.Bind(&rec); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if rec.SoldDate.IsZero() {
		rec.SoldDate = time.Now().UTC()
	}

	id, err := h.saleRepo.Add(c.Request().Context(), &rec)
	if err != nil {
		return err
	}

	return respondInsert(c, id)
}
