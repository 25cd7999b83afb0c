package ai

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConfigured indicates no Google AI API key was provided.
	ErrNotConfigured = errors.New("google ai api key is not configured")

	// ErrInvalidAPIKey indicates the configured API key was rejected.
	ErrInvalidAPIKey = errors.New("invalid google ai api key")

	// ErrPermissionDenied indicates the API key lacks access.
	ErrPermissionDenied = errors.New("google ai api access denied")

	// ErrQuotaExceeded indicates the billing quota has been consumed.
	ErrQuotaExceeded = errors.New("google ai api quota exceeded")

	// ErrRateLimited indicates too many requests in a short window.
	ErrRateLimited = errors.New("google ai api rate limit exceeded")

	// ErrModelNotFound indicates the requested model does not exist or is
	// not accessible; the caller may try the next candidate model.
	ErrModelNotFound = errors.New("model not found or not accessible")
)

// ClassifyError maps a vendor error message onto a sentinel error class by
// message-text matching, so callers can dispatch with errors.Is.
func ClassifyError(model, message string) error {
	switch {
	case strings.Contains(message, "API_KEY_INVALID") || strings.Contains(message, "API key not valid"):
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, message)
	case strings.Contains(message, "PERMISSION_DENIED"):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, message)
	case strings.Contains(message, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	case strings.Contains(message, "QUOTA_EXCEEDED") || strings.Contains(strings.ToLower(message), "quota"):
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, message)
	case strings.Contains(strings.ToLower(message), "not found") || strings.Contains(message, "INVALID_ARGUMENT"):
		return fmt.Errorf("%w: %s: %s", ErrModelNotFound, model, message)
	default:
		return fmt.Errorf("google ai api error: %s", message)
	}
}
