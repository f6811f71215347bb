package apperror

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New(KindInsufficientFunds, "FUNDS_001", "Insufficient balance for this transfer"),
			expected: "[FUNDS_001] Insufficient balance for this transfer",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap(KindNetwork, "NET_001", "Blockchain RPC unavailable, try again later", errors.New("dial tcp: timeout")),
			expected: "[NET_001] Blockchain RPC unavailable, try again later: dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("cipher: message authentication failed")
	appErr := ErrIntegrity(inner)

	assert.ErrorIs(t, appErr, inner)
	assert.Nil(t, errors.Unwrap(ErrWalletNotFound()))
}

func TestIsKind(t *testing.T) {
	err := ErrWalletLimit(5)

	assert.True(t, IsKind(err, KindCapacity))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindCapacity))
	assert.False(t, IsKind(nil, KindCapacity))

	// Works through wrapping.
	wrapped := fmt.Errorf("creating wallet: %w", err)
	assert.True(t, IsKind(wrapped, KindCapacity))
}

func TestAsAppError(t *testing.T) {
	appErr := AsAppError(fmt.Errorf("outer: %w", ErrNoActiveWallet()))
	require.NotNil(t, appErr)
	assert.Equal(t, "NF_002", appErr.Code)

	assert.Nil(t, AsAppError(errors.New("not an app error")))
}

func TestErrRateLimited_CarriesRetryHint(t *testing.T) {
	err := ErrRateLimited(90 * time.Second)

	require.Equal(t, KindRateLimit, err.Kind)
	assert.Equal(t, 90*time.Second, err.RetryAfter)
	assert.Positive(t, err.RetryAfter)
}

func TestErrTransactionRejected_SurfacesChainReason(t *testing.T) {
	err := ErrTransactionRejected("blockhash not found", errors.New("rpc code -32002"))

	assert.Contains(t, err.Message, "blockhash not found")
	assert.True(t, IsKind(err, KindTransactionRejected))
}

func TestConstructors_Kinds(t *testing.T) {
	tests := []struct {
		err  *AppError
		kind Kind
	}{
		{ErrMasterSecret(nil), KindConfiguration},
		{ErrWalletNotFound(), KindNotFound},
		{ErrNoActiveWallet(), KindNotFound},
		{ErrMnemonicUnavailable(), KindNotFound},
		{ErrIntegrity(nil), KindIntegrity},
		{ErrWalletLimit(5), KindCapacity},
		{ErrRateLimited(time.Minute), KindRateLimit},
		{ErrInsufficientFunds(), KindInsufficientFunds},
		{ErrNetwork(nil), KindNetwork},
		{Validation("bad address"), KindValidation},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.err.Kind, tt.err.Code)
		assert.NotEmpty(t, tt.err.Message)
	}
}
