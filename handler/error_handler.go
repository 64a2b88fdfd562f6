package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/userdir/pkg/logger"
	"github.com/dmitrymomot/userdir/pkg/requestid"
	"github.com/dmitrymomot/userdir/pkg/validator"
)

// bindError keeps the binder error for logs while answering 400.
type bindError struct{ err error }

func (e bindError) Error() string { return e.err.Error() }
func (e bindError) Unwrap() error { return e.err }

func badRequest(err error) error { return bindError{err: err} }

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// Toast renders the message shown to DataStar clients. Nil skips the patch.
	Toast func(message string) templ.Component
	// ToastTarget is the selector patched with Toast. Defaults to "#toast".
	ToastTarget string
}

// classify maps err to a status code and a client-safe message.
func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		return http.StatusBadRequest, errs.Error()
	}
	var be bindError
	if errors.As(err, &be) {
		return http.StatusBadRequest, ErrBadRequest.Message
	}
	return http.StatusInternalServerError, ErrInternalServerError.Message
}

// NewErrorHandler logs the failure with the request ID and answers with a
// plain status for regular requests or a toast patch for DataStar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, message := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) && cfg.Toast != nil {
			if sse := ctx.SSE(); sse != nil {
				if perr := sse.PatchElementTempl(cfg.Toast(message), WithTarget(cfg.ToastTarget), WithPatchMode(PatchInner)); perr != nil {
					log.WarnContext(r.Context(), "failed to patch error toast", logger.Error(perr))
				}
				return
			}
		}
		http.Error(ctx.ResponseWriter(), message, status)
	}
}

func defaultErrorHandler(ctx Context, err error) {
	status, message := classify(err)
	http.Error(ctx.ResponseWriter(), message, status)
}
