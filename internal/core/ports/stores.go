package ports

import (
	"context"

	"custodial-wallet-vault/internal/core/domain"
)

//go:generate mockgen -source=stores.go -destination=mocks/stores_mock.go -package=mocks

// SecretStore persists one encrypted wallet record per (tenant, wallet)
// pair. Implementations must write atomically: a crash mid-save never
// leaves a partially written record visible to readers.
type SecretStore interface {
	// Save writes or atomically replaces a wallet record.
	Save(ctx context.Context, tenant domain.TenantID, record *domain.WalletRecord) error

	// Load returns the record or a not-found error; a corrupt or unreadable
	// record is a distinct internal error, never conflated with not-found.
	Load(ctx context.Context, tenant domain.TenantID, walletID string) (*domain.WalletRecord, error)

	// ListTenant returns all records for one tenant, oldest first.
	ListTenant(ctx context.Context, tenant domain.TenantID) ([]*domain.WalletRecord, error)

	// ListTenants enumerates every tenant with at least one stored wallet.
	ListTenants(ctx context.Context) ([]domain.TenantID, error)
}

// EnvelopeCipher derives a per-wallet key from the master secret and
// performs authenticated encryption of wallet secrets.
type EnvelopeCipher interface {
	// Seal encrypts plaintext under a key derived for the tenant with a
	// fresh salt and nonce.
	Seal(tenant domain.TenantID, plaintext []byte) (*domain.Envelope, error)

	// Open decrypts an envelope. Any tag mismatch, truncation, or bit flip
	// fails closed with an integrity error.
	Open(tenant domain.TenantID, env *domain.Envelope) ([]byte, error)
}
