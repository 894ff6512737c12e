package webapi

import (
	"net/http"

	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errorJSON maps service errors onto HTTP statuses: validation failures are
// 400s with the rule message, missing records are 404s, everything else is a
// 500.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case lairsvc.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, stor.ErrNotFound), errors.Is(err, lairsvc.ErrSchemeNotFound):
		status = http.StatusNotFound
	}

	return ctx.JSON(status, map[string]string{"error": err.Error()})
}
