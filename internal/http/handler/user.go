package handler

import (
	"errors"
	"net/http"
	"strconv"

	"inventory-service/internal/auth"
	"inventory-service/internal/domain/user"
	"inventory-service/internal/repository"
	apperrors "inventory-service/pkg/errors"
	"inventory-service/pkg/validator"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// List is the admin's paginated user listing. The count is an estimate,
// acceptable for display.
func (h *UserHandler) List(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidPage)
	}

	users, count, err := h.userRepo.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		jsonKeyResult: users,
		jsonKeyCount:  count,
	})
}

// Get fetches one user by email. Deliberately unauthenticated: the SPA
// bootstraps public profiles from this path.
func (h *UserHandler) Get(c echo.Context) error {
	u, err := h.userRepo.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	return respondMaybe(c, u, err)
}

// GetSystemAdmin serves the admin's public profile by email. Same shape
// as Get; kept as its own route for the dashboard.
func (h *UserHandler) GetSystemAdmin(c echo.Context) error {
	u, err := h.userRepo.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	return respondMaybe(c, u, err)
}

// CheckAdmin projects the role to a boolean, self-gated: a session may
// only ask about its own email.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	if err := auth.RequireSelf(c); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return respondMessage(c, http.StatusForbidden, msgForbiddenAccess)
		}
		return respondMessage(c, http.StatusUnauthorized, msgUnauthorizedAccess)
	}

	u, err := h.userRepo.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{jsonKeyAdmin: u.IsAdmin()})
}

// CheckManager projects the manager role. Session-gated but not
// self-gated, mirroring the asymmetry of the admin projection.
func (h *UserHandler) CheckManager(c echo.Context) error {
	u, err := h.userRepo.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{jsonKeyManager: u.IsManager()})
}

// Create registers a user. A duplicate email soft-fails with a message
// body and a null insertedId rather than an error status.
func (h *UserHandler) Create(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if err := validator.Email(u.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.userRepo.Create(c.Request().Context(), &u)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && errors.Is(err, apperrors.ErrConflict) {
			return c.JSON(http.StatusOK, map[string]any{
				jsonKeyMessage:    appErr.Message,
				jsonKeyInsertedID: nil,
			})
		}
		return err
	}

	return respondInsert(c, id)
}

// PromoteManager is the one-way none-to-manager transition, attaching
// shop identity fields in the same write.
func (h *UserHandler) PromoteManager(c echo.Context) error {
	var info user.ManagerPromotion
	if err := c.Bind(&info); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if _, ok := user.ParseRole(info.Role); !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidRole)
	}

	modified, err := h.userRepo.PromoteManager(c.Request().Context(), c.Param(paramEmail), info)
	if err != nil {
		return err
	}

	return respondModified(c, modified)
}

// AccrueIncome adds a sale's price to the admin's process-wide income
// total. The addition is a single atomic increment at the store.
func (h *UserHandler) AccrueIncome(c echo.Context) error {
	price, err := strconv.ParseFloat(c.QueryParam(queryPrice), 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidPrice)
	}

	modified, err := h.userRepo.AccrueAdminIncome(c.Request().Context(), price)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return err
	}

	return respondModified(c, modified)
}
