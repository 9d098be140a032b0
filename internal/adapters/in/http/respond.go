package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"flourmill/internal/pkg/errs"
)

// envelope is the uniform response shape of the API.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

// respondError maps domain errors onto HTTP status codes: missing objects to
// 404, validation failures to 400, illegal stage or status transitions to
// 409, everything else to 500.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), envelope{Success: false, Error: err.Error()})
}

func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
