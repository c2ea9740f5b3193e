package apierr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HTTPErrorHandler renders every error the handlers return as structured
// JSON. Unrecognized errors are logged and collapsed into a generic 500 so no
// internal detail leaks to the client.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status = http.StatusInternalServerError
			body   interface{}
		)

		var apiErr *Error
		var fieldErrs FieldErrors
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &apiErr):
			status = apiErr.Status
			body = map[string]string{"error": apiErr.Message}
		case errors.As(err, &fieldErrs):
			status = http.StatusBadRequest
			body = map[string]FieldErrors{"errors": fieldErrs}
		case errors.As(err, &echoErr):
			status = echoErr.Code
			msg, ok := echoErr.Message.(string)
			if !ok {
				msg = http.StatusText(status)
			}
			body = map[string]string{"error": msg}
		default:
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
			body = map[string]string{"error": "Internal server error."}
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("failed to write error response")
		}
	}
}
