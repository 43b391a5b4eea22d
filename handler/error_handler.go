package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formguard/pkg/environment"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func isServerError(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError
}

// determineErrorType maps HTTP status codes to error types for UI display
func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case isServerError(statusCode):
		return "error"
	default:
		return "info"
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// formatValidationErrors lists every message as "field: message", sorted
// by field.
func formatValidationErrors(validationErr ValidationError) string {
	fields := make([]string, 0, len(validationErr))
	for field := range validationErr {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var messages []string
	for _, field := range fields {
		for _, msg := range validationErr[field] {
			messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, "; ")
}

// classifyError analyzes the error and returns structured error information.
// Server error details are only shown in development.
func classifyError(ctx context.Context, err error) ErrorInfo {
	httpErr := ClassifyError(err)
	info := ErrorInfo{
		StatusCode: httpErr.Code,
		Message:    "An error occurred processing your request",
	}

	var validationErr ValidationError
	switch {
	case errors.As(err, &validationErr):
		info.Message = formatValidationErrors(validationErr)
	case isClientError(httpErr.Code):
		info.Message = err.Error()
	case environment.IsDevelopment(ctx):
		info.Message = err.Error()
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

// renderDataStarResponse renders error as DataStar toast notification
func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	params := ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	}

	response := Templ(
		cfg.ErrorToast(params),
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)

	// SSE responses keep status 200
	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

func renderJSONResponse(ctx Context, err error, requestID string, log *slog.Logger) {
	if renderErr := JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error response",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_json"),
		)
	}
}

// NewErrorHandler creates the error handler shared by every route.
// DataStar requests get a toast when ErrorToast is configured; everything
// else gets a JSON error body with the classified status code.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(ctx.Request().Context(), err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) && cfg.ErrorToast != nil {
			renderDataStarResponse(ctx, cfg, info, requestID, log)
			return
		}
		renderJSONResponse(ctx, err, requestID, log)
	}
}
