package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"custodial-wallet-vault/internal/core/domain"
	"custodial-wallet-vault/internal/core/ports"
	"custodial-wallet-vault/pkg/apperror"
)

// VaultLimiters groups the per-class throttles the vault enforces.
type VaultLimiters struct {
	ExportKey      ports.RateLimiter
	ExportMnemonic ports.RateLimiter
	Withdraw       ports.RateLimiter
	Market         ports.RateLimiter
}

// VaultOptions carries the tunables the vault needs beyond its
// collaborators.
type VaultOptions struct {
	// RPCTimeout bounds every chain call made on behalf of a single
	// user-facing operation.
	RPCTimeout time.Duration

	// FeeReserveLamports is withheld from the spendable balance so a
	// withdrawal never fails for lack of the network fee.
	FeeReserveLamports uint64
}

// Vault is the orchestrator behind ports.VaultService. All mutating
// operations for one tenant are serialized through a per-tenant mutex;
// operations for different tenants never contend.
type Vault struct {
	store    ports.SecretStore
	cipher   ports.EnvelopeCipher
	registry *Registry
	chain    ports.ChainClient
	limiters VaultLimiters
	log      zerolog.Logger

	rpcTimeout time.Duration
	feeReserve uint64

	locksMu sync.Mutex
	locks   map[domain.TenantID]*sync.Mutex

	balMu     sync.RWMutex
	lastKnown map[string]uint64 // address -> last successfully read balance
}

func NewVault(
	store ports.SecretStore,
	cipher ports.EnvelopeCipher,
	registry *Registry,
	chain ports.ChainClient,
	limiters VaultLimiters,
	opts VaultOptions,
	log zerolog.Logger,
) *Vault {
	if opts.RPCTimeout <= 0 {
		opts.RPCTimeout = 15 * time.Second
	}
	return &Vault{
		store:      store,
		cipher:     cipher,
		registry:   registry,
		chain:      chain,
		limiters:   limiters,
		log:        log,
		rpcTimeout: opts.RPCTimeout,
		feeReserve: opts.FeeReserveLamports,
		locks:      make(map[domain.TenantID]*sync.Mutex),
		lastKnown:  make(map[string]uint64),
	}
}

// lockTenant acquires the tenant's mutex, creating it on first use, and
// returns the unlock.
func (v *Vault) lockTenant(tenant domain.TenantID) func() {
	v.locksMu.Lock()
	mu, ok := v.locks[tenant]
	if !ok {
		mu = &sync.Mutex{}
		v.locks[tenant] = mu
	}
	v.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func limitKey(class string, tenant domain.TenantID) string {
	return class + ":" + tenant.String()
}

// CreateWallet generates a fresh keypair from a new mnemonic, seals both
// secrets, and persists the record. The tenant's first wallet becomes
// active. The mnemonic is returned exactly once.
func (v *Vault) CreateWallet(ctx context.Context, tenant domain.TenantID, label string) (*ports.CreateWalletResult, error) {
	unlock := v.lockTenant(tenant)
	defer unlock()

	if v.registry.Count(tenant) >= domain.MaxWalletsPerTenant {
		return nil, apperror.ErrWalletLimit(domain.MaxWalletsPerTenant)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = "Wallet"
	}

	mnemonic, err := newMnemonic()
	if err != nil {
		return nil, err
	}
	key, err := keypairFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("deriving keypair: %w", err)
	}
	defer clear(key)
	address := key.PublicKey().String()

	keyEnv, err := v.cipher.Seal(tenant, key)
	if err != nil {
		return nil, fmt.Errorf("sealing private key: %w", err)
	}
	mnEnv, err := v.cipher.Seal(tenant, []byte(mnemonic))
	if err != nil {
		return nil, fmt.Errorf("sealing mnemonic: %w", err)
	}

	now := time.Now().UTC()
	record := &domain.WalletRecord{
		WalletID:         domain.NewWalletID(label),
		Label:            label,
		Address:          address,
		KeyEnvelope:      *keyEnv,
		MnemonicEnvelope: mnEnv,
		CreatedAt:        now,
		UpdatedAt:        now,
		Active:           v.registry.Count(tenant) == 0,
	}

	// Register first, roll back on a failed write: creation is
	// all-or-nothing, never a record on disk the index cannot see.
	if err := v.registry.Register(tenant, record.Header()); err != nil {
		return nil, err
	}
	if err := v.store.Save(ctx, tenant, record); err != nil {
		v.registry.Deregister(tenant, record.WalletID)
		return nil, fmt.Errorf("storing wallet: %w", err)
	}

	v.log.Info().
		Str("tenant", tenant.String()).
		Str("wallet_id", record.WalletID).
		Str("address", address).
		Bool("active", record.Active).
		Msg("wallet created")

	return &ports.CreateWalletResult{
		WalletID: record.WalletID,
		Address:  address,
		Mnemonic: mnemonic,
	}, nil
}

// HasWallet reports whether the tenant holds any wallet. Pure index read.
func (v *Vault) HasWallet(tenant domain.TenantID) bool {
	return v.registry.HasWallet(tenant)
}

// ListWallets joins the tenant's wallet headers with best-effort balance
// reads. A failed read falls back to the last balance this process saw
// for the address, flagged via BalanceKnown.
func (v *Vault) ListWallets(ctx context.Context, tenant domain.TenantID) ([]ports.WalletInfo, error) {
	headers := v.registry.Headers(tenant)
	infos := make([]ports.WalletInfo, 0, len(headers))

	for _, h := range headers {
		info := ports.WalletInfo{WalletHeader: h}

		cctx, cancel := context.WithTimeout(ctx, v.rpcTimeout)
		bal, err := v.chain.Balance(cctx, h.Address)
		cancel()

		if err != nil {
			v.log.Warn().Err(err).
				Str("tenant", tenant.String()).
				Str("wallet_id", h.WalletID).
				Msg("balance read failed, using last known")
			info.Lamports = v.cachedBalance(h.Address)
			info.BalanceKnown = false
		} else {
			v.rememberBalance(h.Address, bal)
			info.Lamports = bal
			info.BalanceKnown = true
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// SetActiveWallet flips the active flag to another wallet the tenant
// owns and persists both records. The newly active record is written
// first with a fresh update stamp; a crash between the two saves strands
// both records flagged, and rehydration then resolves to the newer stamp,
// so the flip's target survives either way.
func (v *Vault) SetActiveWallet(ctx context.Context, tenant domain.TenantID, walletID string) error {
	unlock := v.lockTenant(tenant)
	defer unlock()

	if !v.registry.Owns(tenant, walletID) {
		return apperror.ErrWalletNotFound()
	}
	prevID, err := v.registry.ActiveID(tenant)
	if err != nil {
		return err
	}
	if prevID == walletID {
		return nil
	}

	now := time.Now().UTC()

	next, err := v.store.Load(ctx, tenant, walletID)
	if err != nil {
		return err
	}
	next.Active = true
	next.UpdatedAt = now
	if err := v.store.Save(ctx, tenant, next); err != nil {
		return fmt.Errorf("persisting new active wallet: %w", err)
	}

	prev, err := v.store.Load(ctx, tenant, prevID)
	if err != nil {
		return err
	}
	prev.Active = false
	prev.UpdatedAt = now
	if err := v.store.Save(ctx, tenant, prev); err != nil {
		return fmt.Errorf("persisting previous active wallet: %w", err)
	}

	if err := v.registry.SetActive(tenant, walletID); err != nil {
		return err
	}

	v.log.Info().
		Str("tenant", tenant.String()).
		Str("wallet_id", walletID).
		Msg("active wallet switched")
	return nil
}

// DepositAddress returns the active wallet's public address. Index-only;
// no secrets are touched.
func (v *Vault) DepositAddress(tenant domain.TenantID) (string, error) {
	activeID, err := v.registry.ActiveID(tenant)
	if err != nil {
		return "", err
	}
	for _, h := range v.registry.Headers(tenant) {
		if h.WalletID == activeID {
			return h.Address, nil
		}
	}
	return "", apperror.ErrWalletNotFound()
}

// ExportPrivateKey decrypts the active wallet's key and returns it
// base58-encoded. Throttled per tenant.
func (v *Vault) ExportPrivateKey(ctx context.Context, tenant domain.TenantID) (string, error) {
	if res := v.limiters.ExportKey.Allow(limitKey("export_key", tenant)); !res.Allowed {
		return "", apperror.ErrRateLimited(res.RetryAfter)
	}

	key, rec, err := v.openActiveKey(ctx, tenant)
	if err != nil {
		return "", err
	}
	defer clear(key)

	encoded := solana.PrivateKey(key).String()
	v.log.Info().
		Str("tenant", tenant.String()).
		Str("wallet_id", rec.WalletID).
		Msg("private key exported")
	return encoded, nil
}

// ExportMnemonic decrypts and returns the active wallet's recovery
// phrase. Wallets imported before mnemonics were stored have none.
// Throttled per tenant.
func (v *Vault) ExportMnemonic(ctx context.Context, tenant domain.TenantID) (string, error) {
	if res := v.limiters.ExportMnemonic.Allow(limitKey("export_mnemonic", tenant)); !res.Allowed {
		return "", apperror.ErrRateLimited(res.RetryAfter)
	}

	rec, err := v.activeRecord(ctx, tenant)
	if err != nil {
		return "", err
	}
	if rec.MnemonicEnvelope == nil {
		return "", apperror.ErrMnemonicUnavailable()
	}

	plain, err := v.cipher.Open(tenant, rec.MnemonicEnvelope)
	if err != nil {
		if apperror.IsKind(err, apperror.KindIntegrity) {
			v.registry.MarkUnusable(tenant, rec.WalletID)
		}
		return "", err
	}
	mnemonic := string(plain)
	clear(plain)

	v.log.Info().
		Str("tenant", tenant.String()).
		Str("wallet_id", rec.WalletID).
		Msg("mnemonic exported")
	return mnemonic, nil
}

// GetSigner decrypts the active wallet's key and wraps it in a transient
// signer. The caller must not retain it beyond the current operation.
func (v *Vault) GetSigner(ctx context.Context, tenant domain.TenantID) (ports.Signer, error) {
	key, rec, err := v.openActiveKey(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return &transientSigner{key: solana.PrivateKey(key), address: rec.Address}, nil
}

// VerifyWalletIntegrity decrypts the active wallet's key and discards it.
// An auth-tag failure marks the wallet unusable and reports false; other
// failures (no wallet, unreadable record) surface as errors.
func (v *Vault) VerifyWalletIntegrity(ctx context.Context, tenant domain.TenantID) (bool, error) {
	rec, err := v.activeRecord(ctx, tenant)
	if err != nil {
		return false, err
	}

	key, err := v.cipher.Open(tenant, &rec.KeyEnvelope)
	if err != nil {
		if apperror.IsKind(err, apperror.KindIntegrity) {
			v.registry.MarkUnusable(tenant, rec.WalletID)
			v.log.Error().
				Str("tenant", tenant.String()).
				Str("wallet_id", rec.WalletID).
				Msg("wallet failed integrity check")
			return false, nil
		}
		return false, err
	}
	defer clear(key)

	if solana.PrivateKey(key).PublicKey().String() != rec.Address {
		v.registry.MarkUnusable(tenant, rec.WalletID)
		return false, nil
	}
	return true, nil
}

// Withdraw moves lamports from the active wallet to a destination
// address. The fee reserve is withheld from the spendable balance. A
// broadcast is attempted exactly once; failures propagate without retry.
func (v *Vault) Withdraw(ctx context.Context, tenant domain.TenantID, toAddress string, amount uint64) (string, error) {
	// Input validation comes before the throttle: a typo'd address must
	// not burn one of the tenant's few withdrawal slots.
	if err := v.chain.ValidateAddress(toAddress); err != nil {
		return "", err
	}
	if amount == 0 {
		return "", apperror.Validation("amount must be positive")
	}

	if res := v.limiters.Withdraw.Allow(limitKey("withdraw", tenant)); !res.Allowed {
		return "", apperror.ErrRateLimited(res.RetryAfter)
	}

	unlock := v.lockTenant(tenant)
	defer unlock()

	key, rec, err := v.openActiveKey(ctx, tenant)
	if err != nil {
		return "", err
	}
	defer clear(key)

	cctx, cancel := context.WithTimeout(ctx, v.rpcTimeout)
	balance, err := v.chain.Balance(cctx, rec.Address)
	cancel()
	if err != nil {
		return "", err
	}
	v.rememberBalance(rec.Address, balance)

	if balance <= v.feeReserve || amount > balance-v.feeReserve {
		return "", apperror.ErrInsufficientFunds()
	}

	cctx, cancel = context.WithTimeout(ctx, v.rpcTimeout)
	sig, err := v.chain.Transfer(cctx, key, toAddress, amount)
	cancel()
	if err != nil {
		return "", err
	}
	v.rememberBalance(rec.Address, balance-amount)

	v.log.Info().
		Str("tenant", tenant.String()).
		Str("wallet_id", rec.WalletID).
		Str("to", toAddress).
		Uint64("lamports", amount).
		Str("signature", sig).
		Msg("withdrawal broadcast")
	return sig, nil
}

// AllowMarketplaceAction applies the shared marketplace throttle class.
func (v *Vault) AllowMarketplaceAction(tenant domain.TenantID) error {
	if res := v.limiters.Market.Allow(limitKey("market", tenant)); !res.Allowed {
		return apperror.ErrRateLimited(res.RetryAfter)
	}
	return nil
}

// activeRecord loads the full record of the tenant's active wallet.
func (v *Vault) activeRecord(ctx context.Context, tenant domain.TenantID) (*domain.WalletRecord, error) {
	activeID, err := v.registry.ActiveID(tenant)
	if err != nil {
		return nil, err
	}
	if v.registry.IsUnusable(tenant, activeID) {
		return nil, apperror.ErrIntegrity(nil)
	}
	return v.store.Load(ctx, tenant, activeID)
}

// openActiveKey decrypts the active wallet's private key. Integrity
// failures mark the wallet unusable before surfacing.
func (v *Vault) openActiveKey(ctx context.Context, tenant domain.TenantID) ([]byte, *domain.WalletRecord, error) {
	rec, err := v.activeRecord(ctx, tenant)
	if err != nil {
		return nil, nil, err
	}

	key, err := v.cipher.Open(tenant, &rec.KeyEnvelope)
	if err != nil {
		if apperror.IsKind(err, apperror.KindIntegrity) {
			v.registry.MarkUnusable(tenant, rec.WalletID)
			v.log.Error().
				Str("tenant", tenant.String()).
				Str("wallet_id", rec.WalletID).
				Msg("wallet failed integrity check")
		}
		return nil, nil, err
	}
	return key, rec, nil
}

func (v *Vault) rememberBalance(address string, lamports uint64) {
	v.balMu.Lock()
	v.lastKnown[address] = lamports
	v.balMu.Unlock()
}

func (v *Vault) cachedBalance(address string) uint64 {
	v.balMu.RLock()
	defer v.balMu.RUnlock()
	return v.lastKnown[address]
}

var _ ports.VaultService = (*Vault)(nil)
