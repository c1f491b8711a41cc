package http

import (
	"errors"
	"net/http"

	"linkylink/internal/event"
	pkgErrors "linkylink/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrInvalidPermalink):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, event.MsgInvalidPermalink)
	case errors.Is(err, event.ErrUnschedulable):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "event has no usable start time")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
