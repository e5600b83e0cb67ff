package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Offer Book (BOOK) ----

func ErrUnknownDirection(direction string) *AppError {
	return New("BOOK_001", fmt.Sprintf("unknown direction %q: must be BUY or SELL", direction), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("BOOK_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNotOwnOffer() *AppError {
	return New("BOOK_003", "Only own offers can be removed", http.StatusForbidden)
}

// ErrRemoveOfferFailed carries the offer source's failure message unchanged.
func ErrRemoveOfferFailed(message string) *AppError {
	return New("BOOK_004", message, http.StatusUnprocessableEntity)
}

func ErrViewInactive() *AppError {
	return New("BOOK_005", "Offer book view is not active", http.StatusServiceUnavailable)
}

// ---- Preferences (PREF) ----

func ErrInvalidPreference(message string) *AppError {
	return New("PREF_001", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStreamingDisabled() *AppError {
	return New("SYS_003", "Streaming is disabled", http.StatusNotImplemented)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New("SYS_004", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
