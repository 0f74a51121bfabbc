package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/SscSPs/ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrWriteFailure):
		return http.StatusInternalServerError
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnknownAccount),
		errors.Is(err, apperrors.ErrUnbalanced):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError writes the error body for err. Internal failures are logged
// and replaced by fallback so storage details never reach the caller.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	body := dto.ErrorResponse{Error: err.Error(), Kind: apperrors.Kind(err)}

	var unbalanced *apperrors.UnbalancedError
	if errors.As(err, &unbalanced) {
		body.Debits = dto.FormatAmount(unbalanced.Debits)
		body.Credits = dto.FormatAmount(unbalanced.Credits)
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.String("kind", body.Kind))
		body.Error = fallback
	} else {
		logger.Warn("Request rejected", slog.String("error", err.Error()), slog.String("kind", body.Kind))
	}
	c.JSON(status, body)
}

// respondBindError reports a request that failed binding or tag validation.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error(), Kind: "VALIDATION"})
}

// requireClientID returns the tenant resolved by AuthMiddleware or writes a 401.
func requireClientID(c *gin.Context, logger *slog.Logger) (string, bool) {
	clientID, ok := middleware.GetClientIDFromContext(c)
	if !ok {
		logger.Error("Client ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return clientID, true
}
