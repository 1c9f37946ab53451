package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
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

// WithDetail attaches a key/value pair that callers can use to build messages.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given error code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}

// Error codes.
const (
	CodeInvalidAmount             = "LED_001"
	CodeCurrencyMismatch          = "LED_002"
	CodeAccountNotActive          = "LED_003"
	CodeAccountClosed             = "LED_004"
	CodeInsufficientFunds         = "LED_005"
	CodeSameAccount               = "LED_006"
	CodeAlreadyReversed           = "LED_007"
	CodeCannotReverseInsufficient = "LED_008"
	CodeNotReversible             = "LED_009"
	CodeAccountHasFunds           = "LED_010"
	CodeInvalidAccountNumber      = "LED_011"
	CodeNoExchangeRate            = "LED_012"
	CodeInvalidStatusTransition   = "LED_013"
	CodeReleaseExceedsBlocked     = "LED_014"
	CodeNotMatured                = "TRM_001"
	CodeTermNotMatured            = "TRM_002"
	CodeEarlyClosePenaltyRequired = "TRM_003"
	CodeInvalidTerm               = "TRM_004"
	CodeTermNotActive             = "TRM_005"
	CodeSessionAlreadyOpen        = "SES_001"
	CodeSessionNotOpen            = "SES_002"
	CodeNotFound                  = "GEN_404"
	CodeValidation                = "GEN_400"
	CodePayloadTooLarge           = "GEN_413"
	CodeInvalidCredentials        = "AUTH_001"
	CodeInvalidToken              = "AUTH_003"
	CodeInternal                  = "SYS_001"
	CodeRateLimitExceeded         = "SYS_002"
	CodeConcurrencyConflict       = "SYS_004"
	CodeLedgerInvariantViolation  = "SYS_005"
)

// ---- Ledger primitives (LED) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrCurrencyMismatch(expected, got string) *AppError {
	return New(CodeCurrencyMismatch, fmt.Sprintf("Currency mismatch: expected %s, got %s", expected, got), http.StatusBadRequest).
		WithDetail("expected", expected).
		WithDetail("got", got)
}

func ErrAccountNotActive(accountID string) *AppError {
	return New(CodeAccountNotActive, "Account is not active", http.StatusConflict).
		WithDetail("account_id", accountID)
}

func ErrAccountClosed(accountID string) *AppError {
	return New(CodeAccountClosed, "Account is closed", http.StatusConflict).
		WithDetail("account_id", accountID)
}

// ErrInsufficientFunds reports the missing amount in minor units.
func ErrInsufficientFunds(shortfall int64, currency string) *AppError {
	return New(CodeInsufficientFunds, "Insufficient available balance", http.StatusUnprocessableEntity).
		WithDetail("shortfall", shortfall).
		WithDetail("currency", currency)
}

func ErrSameAccount() *AppError {
	return New(CodeSameAccount, "Source and destination accounts must differ", http.StatusBadRequest)
}

func ErrAlreadyReversed(entryID string) *AppError {
	return New(CodeAlreadyReversed, "Transaction has already been reversed", http.StatusConflict).
		WithDetail("entry_id", entryID)
}

func ErrCannotReverseInsufficientFunds(shortfall int64, currency string) *AppError {
	return New(CodeCannotReverseInsufficient, "Cannot reverse: insufficient available balance", http.StatusConflict).
		WithDetail("shortfall", shortfall).
		WithDetail("currency", currency)
}

func ErrNotReversible(entryType string) *AppError {
	return New(CodeNotReversible, fmt.Sprintf("Transactions of type %s cannot be cancelled", entryType), http.StatusBadRequest)
}

func ErrAccountHasFunds() *AppError {
	return New(CodeAccountHasFunds, "Account balance and blocked balance must be zero before closing", http.StatusConflict)
}

func ErrInvalidAccountNumber(number string) *AppError {
	return New(CodeInvalidAccountNumber, fmt.Sprintf("Invalid account number %q", number), http.StatusBadRequest)
}

func ErrNoExchangeRate(from, to string) *AppError {
	return New(CodeNoExchangeRate, fmt.Sprintf("No exchange rate configured for %s to %s", from, to), http.StatusUnprocessableEntity).
		WithDetail("from", from).
		WithDetail("to", to)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New(CodeInvalidStatusTransition, fmt.Sprintf("Cannot change account status from %s to %s", from, to), http.StatusConflict)
}

func ErrReleaseExceedsBlocked(excess int64, currency string) *AppError {
	return New(CodeReleaseExceedsBlocked, "Release amount exceeds blocked balance", http.StatusConflict).
		WithDetail("excess", excess).
		WithDetail("currency", currency)
}

// ---- Term deposits (TRM) ----

func ErrNotMatured() *AppError {
	return New(CodeNotMatured, "Term deposit has not reached maturity", http.StatusConflict)
}

func ErrTermNotMatured(status string) *AppError {
	return New(CodeTermNotMatured, fmt.Sprintf("Term deposit must be matured to renew (status %s)", status), http.StatusConflict)
}

func ErrEarlyClosePenaltyRequired() *AppError {
	return New(CodeEarlyClosePenaltyRequired, "Closing before maturity requires a positive penalty percent", http.StatusUnprocessableEntity)
}

func ErrTermNotActive(status string) *AppError {
	return New(CodeTermNotActive, fmt.Sprintf("Term deposit is %s", status), http.StatusConflict)
}

func ErrInvalidTerm() *AppError {
	return New(CodeInvalidTerm, "Term must be a positive number of months", http.StatusBadRequest)
}

// ---- Cash sessions (SES) ----

func ErrSessionAlreadyOpen(cashierID string) *AppError {
	return New(CodeSessionAlreadyOpen, "Cashier already has an open session", http.StatusConflict).
		WithDetail("cashier_id", cashierID)
}

func ErrSessionNotOpen(status string) *AppError {
	return New(CodeSessionNotOpen, fmt.Sprintf("Cash session is %s", status), http.StatusConflict)
}

// ---- Generic ----

// ErrNotFound reports a missing entity of the given kind.
func ErrNotFound(entity string, id string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound).
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New(CodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge).
		WithDetail("limit_bytes", limit)
}

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid operator id or password", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Too many requests", http.StatusTooManyRequests)
}

// ErrConcurrencyConflict is returned once optimistic or lock retries are exhausted.
func ErrConcurrencyConflict(err error) *AppError {
	return Wrap(CodeConcurrencyConflict, "Concurrent update conflict, retry later", http.StatusServiceUnavailable, err)
}

// ErrLedgerInvariantViolation signals that stored balances disagree with the entry log.
func ErrLedgerInvariantViolation(accountID string, err error) *AppError {
	return Wrap(CodeLedgerInvariantViolation, "Ledger invariant violated", http.StatusInternalServerError, err).
		WithDetail("account_id", accountID)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
