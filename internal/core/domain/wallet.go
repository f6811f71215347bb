package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxWalletsPerTenant is the hard cap on wallets a single tenant may hold.
const MaxWalletsPerTenant = 5

// TenantID is the opaque external identity from the messaging platform.
// It is the tenancy boundary for every vault operation.
type TenantID int64

func (t TenantID) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// ParseTenantID parses a decimal tenant id.
func ParseTenantID(s string) (TenantID, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return TenantID(n), true
}

// KDFParams records how an envelope's key was derived, so records stay
// openable after the process default changes.
type KDFParams struct {
	Iterations int    `json:"iterations"`
	Hash       string `json:"hash"`
}

// Envelope is one authenticated-encryption result. The GCM tag is kept as
// its own field: it is the tamper detector for the whole vault.
type Envelope struct {
	CipherText []byte    `json:"cipher_text"`
	Nonce      []byte    `json:"nonce"`
	AuthTag    []byte    `json:"auth_tag"`
	Salt       []byte    `json:"salt"`
	KDF        KDFParams `json:"kdf"`
}

// WalletRecord is the persisted form of one custodial wallet. It carries
// ciphertext and non-secret metadata only, never plaintext key material.
type WalletRecord struct {
	WalletID         string    `json:"wallet_id"`
	Label            string    `json:"label"`
	Address          string    `json:"address"` // plaintext, non-secret
	KeyEnvelope      Envelope  `json:"key_envelope"`
	MnemonicEnvelope *Envelope `json:"mnemonic_envelope,omitempty"` // legacy wallets may lack it
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Active           bool      `json:"active"`
}

// Header returns the non-secret projection of the record.
func (r *WalletRecord) Header() WalletHeader {
	return WalletHeader{
		WalletID:    r.WalletID,
		Label:       r.Label,
		Address:     r.Address,
		CreatedAt:   r.CreatedAt,
		Active:      r.Active,
		HasMnemonic: r.MnemonicEnvelope != nil,
	}
}

// WalletHeader is wallet metadata with no ciphertext attached; safe to list.
type WalletHeader struct {
	WalletID    string    `json:"wallet_id"`
	Label       string    `json:"label"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
	HasMnemonic bool      `json:"has_mnemonic"`
}

var walletIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidWalletID reports whether id consists only of filesystem-safe,
// allow-listed characters.
func ValidWalletID(id string) bool {
	return id != "" && len(id) <= 64 && walletIDPattern.MatchString(id)
}

// NewWalletID builds a wallet id from a tenant-supplied label: the label is
// reduced to the allow-list and a uuid fragment is appended so ids never
// collide, whatever the label says.
func NewWalletID(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 24 {
		slug = slug[:24]
	}
	if slug == "" {
		slug = "wallet"
	}
	return slug + "-" + uuid.NewString()[:8]
}
