package apperror

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an error into the vault's recovery taxonomy.
type Kind string

const (
	KindConfiguration       Kind = "configuration"        // fatal at startup
	KindValidation          Kind = "validation"           // bad caller input
	KindNotFound            Kind = "not_found"            // unknown tenant/wallet
	KindIntegrity           Kind = "integrity"            // auth-tag mismatch
	KindCapacity            Kind = "capacity"             // wallet-count limit
	KindRateLimit           Kind = "rate_limit"           // throttled
	KindInsufficientFunds   Kind = "insufficient_funds"   //
	KindNetwork             Kind = "network"              // RPC unreachable/timeout
	KindTransactionRejected Kind = "transaction_rejected" // chain refused broadcast
)

// AppError is a structured error with a stable code, a message safe to show
// to end users, and an optional wrapped internal cause that never is.
type AppError struct {
	Kind       Kind          `json:"kind"`
	Code       string        `json:"error_code"`
	Message    string        `json:"message"`
	RetryAfter time.Duration `json:"-"` // set only for rate-limit errors
	Err        error         `json:"-"` // internal cause, not exposed to users
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
func New(kind Kind, code string, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// IsKind reports whether err is (or wraps) an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// AsAppError extracts the AppError from an error chain, or nil.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ---- Configuration (CFG) ----

func ErrMasterSecret(err error) *AppError {
	return Wrap(KindConfiguration, "CFG_001", "Master secret missing or invalid", err)
}

// ---- Lookup (NF) ----

func ErrWalletNotFound() *AppError {
	return New(KindNotFound, "NF_001", "Wallet not found")
}

func ErrNoActiveWallet() *AppError {
	return New(KindNotFound, "NF_002", "No wallet exists for this account yet")
}

func ErrMnemonicUnavailable() *AppError {
	return New(KindNotFound, "NF_003", "This wallet has no stored recovery phrase")
}

func ErrMessageNotFound() *AppError {
	return New(KindNotFound, "NF_004", "Message not found")
}

// ---- Vault integrity (INT) ----

func ErrIntegrity(err error) *AppError {
	return Wrap(KindIntegrity, "INT_001",
		"Wallet data failed its integrity check; please create a new wallet", err)
}

// ---- Capacity (CAP) ----

func ErrWalletLimit(max int) *AppError {
	return New(KindCapacity, "CAP_001",
		fmt.Sprintf("Wallet limit reached (%d per account)", max))
}

// ---- Throttling (RATE) ----

func ErrRateLimited(retryAfter time.Duration) *AppError {
	e := New(KindRateLimit, "RATE_001", "Too many attempts, please slow down")
	e.RetryAfter = retryAfter
	return e
}

// ---- Funds and chain (FUNDS / NET / CHAIN) ----

func ErrInsufficientFunds() *AppError {
	return New(KindInsufficientFunds, "FUNDS_001", "Insufficient balance for this transfer")
}

func ErrNetwork(err error) *AppError {
	return Wrap(KindNetwork, "NET_001", "Blockchain RPC unavailable, try again later", err)
}

// ErrTransactionRejected carries the chain's own rejection reason so the
// caller can show it verbatim.
func ErrTransactionRejected(reason string, err error) *AppError {
	return Wrap(KindTransactionRejected, "CHAIN_001",
		fmt.Sprintf("Transaction rejected: %s", reason), err)
}

// ---- Input (VAL) ----

func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message)
}
