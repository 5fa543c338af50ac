package apperror

import (
	"errors"
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

// Retryable reports whether the caller may safely repeat the operation.
func (e *AppError) Retryable() bool {
	return e.Code == CodeLockContention
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

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

const (
	CodeInvalidAmount       = "VAL_001"
	CodeSameWallet          = "VAL_002"
	CodeValidation          = "VAL_003"
	CodeUnsupportedCurrency = "CUR_001"
	CodeAccessDenied        = "ACC_001"
	CodeInvalidToken        = "ACC_002"
	CodeNotFound            = "WAL_001"
	CodeInsufficientBalance = "WAL_002"
	CodeNegativeBalance     = "WAL_003"
	CodeDuplicateWalletName = "WAL_004"
	CodeWalletHasTx         = "WAL_005"
	CodeCannotDeleteDefault = "WAL_006"
	CodeRateLimitExceeded   = "RATE_001"
	CodeInternal            = "SYS_001"
	CodeLockContention      = "SYS_002"
	CodeRateSourceFailure   = "SYS_003"
)

// ---- Validation (VAL, CUR) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrSameWallet() *AppError {
	return New(CodeSameWallet, "Source and destination wallets must differ", http.StatusBadRequest)
}

// Validation returns a generic validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrUnsupportedCurrency(code string) *AppError {
	return New(CodeUnsupportedCurrency, fmt.Sprintf("Currency %q is not supported", code), http.StatusBadRequest)
}

// ---- Access (ACC) ----

func ErrAccessDenied() *AppError {
	return New(CodeAccessDenied, "You do not have access to this wallet", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Wallet state (WAL) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance in source wallet", http.StatusUnprocessableEntity)
}

func ErrNegativeBalance() *AppError {
	return New(CodeNegativeBalance, "Reversal would leave the destination wallet negative", http.StatusConflict)
}

func ErrDuplicateWalletName() *AppError {
	return New(CodeDuplicateWalletName, "A wallet with this name already exists", http.StatusConflict)
}

func ErrWalletHasTransactions() *AppError {
	return New(CodeWalletHasTx, "Wallet still has transactions", http.StatusConflict)
}

func ErrCannotDeleteDefaultWallet() *AppError {
	return New(CodeCannotDeleteDefault, "The default wallet cannot be deleted", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// ErrLockTimeout is returned when row locks could not be acquired in time.
func ErrLockTimeout(err error) *AppError {
	return Wrap(CodeLockContention, "Wallet is busy, please retry", http.StatusServiceUnavailable, err)
}

func ErrRateSourceUnavailable(err error) *AppError {
	return Wrap(CodeRateSourceFailure, "Exchange rate source unavailable", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
