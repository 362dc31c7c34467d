package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "inventory-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}

func respondInsert(c echo.Context, id string) error {
	return c.JSON(http.StatusOK, map[string]any{jsonKeyInsertedID: id})
}

func respondModified(c echo.Context, modified int64) error {
	return c.JSON(http.StatusOK, map[string]int64{jsonKeyModified: modified})
}

func respondDeleted(c echo.Context, deleted int64) error {
	return c.JSON(http.StatusOK, map[string]int64{jsonKeyDeleted: deleted})
}

// respondMaybe passes absent documents straight through as a null body,
// the way the upstream clients expect, instead of a 404.
func respondMaybe[T any](c echo.Context, doc T, err error) error {
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

func pageParam(c echo.Context) (int, error) {
	raw := c.QueryParam(queryPage)
	if raw == "" {
		return 0, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, apperrors.BadRequest(msgInvalidPage)
	}

	return page, nil
}
