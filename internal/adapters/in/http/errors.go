package http

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use case error to a status code and a structured body.
// Anything unrecognised is logged and reported as 500 without details.
func (s *Server) writeError(c echo.Context, err error) error {
	var (
		stockErr    *errs.StockInsufficientError
		shipmentErr *errs.MissingShipmentError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, servers.Error{Code: http.StatusNotFound, Message: err.Error()})
	case errs.IsInvalidArgument(err):
		return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: err.Error()})
	case errors.Is(err, errs.ErrIllegalStateTransition):
		return c.JSON(http.StatusConflict, servers.Error{Code: http.StatusConflict, Message: err.Error()})
	case errors.As(err, &stockErr):
		return c.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:      http.StatusUnprocessableEntity,
			Message:   err.Error(),
			ProductId: &stockErr.ProductID,
			Requested: &stockErr.Requested,
			Available: &stockErr.Available,
		})
	case errors.As(err, &shipmentErr):
		return c.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:     http.StatusUnprocessableEntity,
			Message:  err.Error(),
			StoreIds: &shipmentErr.StoreIDs,
		})
	}

	s.logger.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// handleHTTPError renders errors raised outside the handlers, such as a path
// parameter the generated wrapper could not bind or an unknown route, with
// the same body as every other failure.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = s.writeError(c, err)
		return
	}

	message := http.StatusText(he.Code)
	if he.Message != nil {
		message = fmt.Sprint(he.Message)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, servers.Error{Code: he.Code, Message: message})
}
