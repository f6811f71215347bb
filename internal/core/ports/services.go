package ports

import (
	"context"
	"time"

	"custodial-wallet-vault/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// --- External collaborators ---

// KeyboardButton is one inline button attached to an outbound message.
type KeyboardButton struct {
	Text string
	Data string
}

// SendOptions carries transport-level delivery flags.
type SendOptions struct {
	Protect  bool // forbid forwarding/saving where the transport supports it
	Keyboard [][]KeyboardButton
}

// Transport is the messaging platform the vault discloses through.
type Transport interface {
	// SendMessage delivers content to a chat and returns the message id.
	SendMessage(ctx context.Context, chatID int64, content string, opts SendOptions) (int, error)

	// DeleteMessage removes a previously sent message. Deleting a message
	// the user already removed returns a not-found error.
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

// ChainClient is the blockchain RPC boundary: balance reads and transfer
// broadcast. No caching beyond what callers do for display.
type ChainClient interface {
	// Balance returns the confirmed native balance in base units.
	Balance(ctx context.Context, address string) (uint64, error)

	// Transfer signs and broadcasts a native transfer, returning the
	// transaction signature. The key is a 64-byte ed25519 private key.
	Transfer(ctx context.Context, key []byte, toAddress string, amount uint64) (string, error)

	// ValidateAddress checks destination address syntax without touching
	// the network.
	ValidateAddress(address string) error
}

// --- Vault (orchestrator) ---

// CreateWalletResult is returned once at creation; the mnemonic is never
// retrievable again without the export flow.
type CreateWalletResult struct {
	WalletID string
	Address  string
	Mnemonic string
}

// WalletInfo joins stored metadata with a best-effort balance read.
type WalletInfo struct {
	domain.WalletHeader
	Lamports     uint64
	BalanceKnown bool // false when RPC failed and Lamports is a fallback
}

// Signer is a transient signing capability for a single operation. It is
// never cached beyond the call that produced it.
type Signer interface {
	Address() string
	Sign(message []byte) ([]byte, error)
}

// VaultService is the public-facing API of the custodial key subsystem.
type VaultService interface {
	CreateWallet(ctx context.Context, tenant domain.TenantID, label string) (*CreateWalletResult, error)
	HasWallet(tenant domain.TenantID) bool
	ListWallets(ctx context.Context, tenant domain.TenantID) ([]WalletInfo, error)
	SetActiveWallet(ctx context.Context, tenant domain.TenantID, walletID string) error
	DepositAddress(tenant domain.TenantID) (string, error)

	ExportPrivateKey(ctx context.Context, tenant domain.TenantID) (string, error)
	ExportMnemonic(ctx context.Context, tenant domain.TenantID) (string, error)

	GetSigner(ctx context.Context, tenant domain.TenantID) (Signer, error)
	VerifyWalletIntegrity(ctx context.Context, tenant domain.TenantID) (bool, error)
	Withdraw(ctx context.Context, tenant domain.TenantID, toAddress string, amount uint64) (string, error)

	// AllowMarketplaceAction applies the shared marketplace throttle class
	// so the embedding agent doesn't grow its own limiter copy.
	AllowMarketplaceAction(tenant domain.TenantID) error
}

// --- Disclosure ---

// DisclosureService governs delivery and timed removal of messages that
// carry secret or sensitive content.
type DisclosureService interface {
	// SendSensitive sends content at the given sensitivity level and
	// schedules its unconditional deletion. A send failure schedules
	// nothing.
	SendSensitive(ctx context.Context, chatID int64, content string, level domain.SensitivityLevel, keyboard [][]KeyboardButton) (int, error)

	// ScheduleDeletion arranges best-effort deletion of any message after
	// the delay. Reusable outside the sensitive-send path.
	ScheduleDeletion(chatID int64, messageID int, delay time.Duration)

	// DeleteNow cancels any pending timer and deletes immediately
	// (user-triggered early removal). Best-effort.
	DeleteNow(ctx context.Context, chatID int64, messageID int)
}

// RateLimitResult holds the outcome of a throttle check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // positive when denied
}

// RateLimiter is a keyed throttle for sensitive-operation classes.
type RateLimiter interface {
	Allow(key string) RateLimitResult
}
