package solana

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"custodial-wallet-vault/pkg/apperror"
)

func TestClient_ValidateAddress(t *testing.T) {
	c := New("http://localhost:0")

	assert.NoError(t, c.ValidateAddress("4Nd1mYvHyfC5Eqz1PZzv3P9sgNzqTDKLYFzGkYJgDq6b"))

	for _, bad := range []string{"", "not-base58-0OIl", "abc"} {
		err := c.ValidateAddress(bad)
		assert.Error(t, err, "address %q", bad)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	}
}

func TestClient_Balance_InvalidAddressNoNetwork(t *testing.T) {
	// An unparseable address fails before any RPC is attempted.
	c := New("http://localhost:0")

	_, err := c.Balance(context.Background(), "garbage")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestClient_Transfer_RejectsBadKeyLength(t *testing.T) {
	c := New("http://localhost:0")

	_, err := c.Transfer(context.Background(), []byte("short"),
		"4Nd1mYvHyfC5Eqz1PZzv3P9sgNzqTDKLYFzGkYJgDq6b", 1)
	assert.ErrorContains(t, err, "private key length")
}
