// Package controller holds the pieces shared by the admin and candidate HTTP handlers.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an id, reusing the caller's header when present.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func RequestIDFrom(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// RequestLogger writes one zerolog line per request in place of gin's text log.
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[requestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	})
}

// RespondError renders a service error with the status its kind maps to.
func RespondError(ctx *gin.Context, err error, op string) {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.Store(err, "unexpected error")
	}
	status := appErr.HTTPStatus()

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("op", op).
		Str("request_id", RequestIDFrom(ctx)).
		Int("status", status).
		Msg("Request failed")

	ctx.JSON(status, dto.ErrorResponse{
		Kind:    string(appErr.Kind),
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// RespondBindError reports a request body or query that failed to bind.
func RespondBindError(ctx *gin.Context, err error, op string) {
	log.Warn().Err(err).Str("op", op).Str("request_id", RequestIDFrom(ctx)).Msg("Failed to bind request")

	details := []string{err.Error()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details = make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s failed on the '%s' rule", fe.Namespace(), fe.Tag()))
		}
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Kind:    string(apperror.KindValidation),
		Code:    apperror.CodeInvalidInput,
		Message: "Invalid request body",
		Details: details,
	})
}
