package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catering/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	// Rule is set for precondition failures, e.g. "out_of_stock".
	Rule string `json:"rule,omitempty"`
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindPreconditionFailed, errs.KindIllegalTransition:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindInvalid:
		return http.StatusUnprocessableEntity
	case errs.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func kindOfStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return errs.KindNotFound.String()
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusBadRequest:
		return "bad_request"
	default:
		if status >= http.StatusInternalServerError {
			return errs.KindInternal.String()
		}
		return "bad_request"
	}
}

// handleError is the echo.HTTPErrorHandler of the API. Internal errors are
// logged and replaced by a generic message.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := s.errorResponse(c, err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(resp.Code)
	} else {
		err = c.JSON(resp.Code, resp)
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}

func (s *Server) errorResponse(c echo.Context, err error) ErrorResponse {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ErrorResponse{
			Code:    httpErr.Code,
			Kind:    kindOfStatus(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Kind:    errs.KindInvalid.String(),
			Message: describeValidation(validationErrs),
		}
	}

	kind := errs.KindOf(err)
	resp := ErrorResponse{
		Code:    statusOf(kind),
		Kind:    kind.String(),
		Message: err.Error(),
	}

	var precondition *errs.PreconditionFailedError
	if errors.As(err, &precondition) {
		resp.Rule = precondition.Rule
		resp.Message = precondition.Message
	}

	if kind == errs.KindInternal {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"route", c.Path(),
			"error", err,
		)
		resp.Message = "internal server error"
	}

	return resp
}

func describeValidation(validationErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
