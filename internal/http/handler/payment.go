package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"inventory-service/internal/domain/payment"
	"inventory-service/internal/repository"
	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// IntentCreator is the slice of the payment processor this handler
// consumes.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type PaymentHandler struct {
	intents     IntentCreator
	paymentRepo repository.PaymentRepository
}

func NewPaymentHandler(intents IntentCreator, paymentRepo repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{
		intents:     intents,
		paymentRepo: paymentRepo,
	}
}

type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntent exchanges a decimal price for a processor client secret.
// Upstream failure surfaces once as 502; there is no retry.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if req.Price <= 0 {
		return respondError(c, http.StatusBadRequest, msgInvalidPrice)
	}

	secret, err := h.intents.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		if errors.Is(err, apperrors.ErrPaymentProvider) {
			return respondError(c, http.StatusBadGateway, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{jsonKeyClientSecret: secret})
}

// Record stores the client-reported completed payment. The report is
// trusted; there is no webhook confirmation.
func (h *PaymentHandler) Record(c echo.Context) error {
	var rec payment.Record
	if err := c.Bind(&rec); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}

	id, err := h.paymentRepo.Record(c.Request().Context(), &rec)
	if err != nil {
		return err
	}

	return respondInsert(c, id)
}
