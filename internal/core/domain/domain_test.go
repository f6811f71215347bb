package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalletID_SanitizesLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"plain", "Main"},
		{"spaces", "My Trading Wallet"},
		{"traversal attempt", "../../etc/passwd"},
		{"separators", "a/b\\c"},
		{"unicode", "кошелёк 💰"},
		{"empty", ""},
		{"dots only", "..."},
		{"very long", strings.Repeat("wallet-label-", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewWalletID(tt.label)
			assert.True(t, ValidWalletID(id), "id %q must be filesystem-safe", id)
			assert.NotContains(t, id, "/")
			assert.NotContains(t, id, "..")
		})
	}
}

func TestNewWalletID_Unique(t *testing.T) {
	a := NewWalletID("Main")
	b := NewWalletID("Main")
	assert.NotEqual(t, a, b, "same label must yield distinct ids")
}

func TestValidWalletID(t *testing.T) {
	assert.True(t, ValidWalletID("main-1a2b3c4d"))
	assert.False(t, ValidWalletID(""))
	assert.False(t, ValidWalletID("UPPER"))
	assert.False(t, ValidWalletID("has space"))
	assert.False(t, ValidWalletID("../escape"))
	assert.False(t, ValidWalletID(strings.Repeat("a", 65)))
}

func TestParseTenantID(t *testing.T) {
	id, ok := ParseTenantID("42")
	require.True(t, ok)
	assert.Equal(t, TenantID(42), id)
	assert.Equal(t, "42", id.String())

	for _, bad := range []string{"", "abc", "-1", "4.2", "42/.."} {
		_, ok := ParseTenantID(bad)
		assert.False(t, ok, "should reject %q", bad)
	}
}

func TestSensitivityPolicy_Table(t *testing.T) {
	tests := []struct {
		level   SensitivityLevel
		ttl     time.Duration
		protect bool
	}{
		{SensitivityPrivateKey, 30 * time.Second, true},
		{SensitivityMnemonic, 60 * time.Second, true},
		{SensitivityBalance, 60 * time.Second, false},
		{SensitivityDepositAddress, 120 * time.Second, false},
		{SensitivityTxConfirmation, 300 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			p := tt.level.Policy()
			assert.Equal(t, tt.ttl, p.TTL)
			assert.Equal(t, tt.protect, p.Protect)
		})
	}
}

func TestSensitivityPolicy_UnknownLevelFailsStrict(t *testing.T) {
	p := SensitivityLevel(99).Policy()
	assert.Equal(t, SensitivityPrivateKey.Policy(), p)
}

func TestWalletRecord_Header(t *testing.T) {
	rec := &WalletRecord{
		WalletID:    "main-1a2b3c4d",
		Label:       "Main",
		Address:     "4Nd1mYvHyfC5Eqz1PZzv3P9sgNzqTDKLYFzGkYJgDq6b",
		KeyEnvelope: Envelope{CipherText: []byte{1, 2, 3}},
		Active:      true,
	}

	h := rec.Header()
	assert.Equal(t, rec.WalletID, h.WalletID)
	assert.Equal(t, rec.Address, h.Address)
	assert.True(t, h.Active)
	assert.False(t, h.HasMnemonic)

	rec.MnemonicEnvelope = &Envelope{}
	assert.True(t, rec.Header().HasMnemonic)
}
