package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"custodial-wallet-vault/internal/core/domain"
	"custodial-wallet-vault/internal/core/ports"
	"custodial-wallet-vault/pkg/apperror"
)

// Registry is the authoritative in-memory index of which wallets belong to
// which tenant and which one is active. It is rehydrated from the secret
// store at startup and kept in sync on every mutation; reads never touch
// disk.
type Registry struct {
	mu      sync.RWMutex
	tenants map[domain.TenantID]*tenantIndex
}

type tenantIndex struct {
	order    []string // wallet ids in creation order
	headers  map[string]domain.WalletHeader
	activeID string
	unusable map[string]bool // integrity-failed wallets, process-local
}

// NewRegistry builds the index from everything the store holds. If a
// tenant's stored active flags are inconsistent (none set, or two set
// after an interrupted flip), the invariant is restored here: the most
// recently updated flagged wallet wins, falling back to the oldest. An
// interrupted flip writes the new active record first with a fresh update
// stamp, so the flip's target is the record that survives.
func NewRegistry(ctx context.Context, store ports.SecretStore) (*Registry, error) {
	r := &Registry{tenants: make(map[domain.TenantID]*tenantIndex)}

	tenants, err := store.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating tenants: %w", err)
	}

	for _, tenant := range tenants {
		records, err := store.ListTenant(ctx, tenant)
		if err != nil {
			return nil, fmt.Errorf("rehydrating tenant %s: %w", tenant, err)
		}
		if len(records) == 0 {
			continue
		}

		idx := newTenantIndex()
		var activeAt time.Time
		for _, rec := range records {
			idx.order = append(idx.order, rec.WalletID)
			idx.headers[rec.WalletID] = rec.Header()
			if !rec.Active {
				continue
			}
			at := rec.UpdatedAt
			if at.IsZero() {
				at = rec.CreatedAt
			}
			if idx.activeID == "" || at.After(activeAt) {
				idx.activeID = rec.WalletID
				activeAt = at
			}
		}
		if idx.activeID == "" {
			idx.activeID = idx.order[0]
		}
		for id, h := range idx.headers {
			h.Active = id == idx.activeID
			idx.headers[id] = h
		}
		r.tenants[tenant] = idx
	}

	return r, nil
}

func newTenantIndex() *tenantIndex {
	return &tenantIndex{
		headers:  make(map[string]domain.WalletHeader),
		unusable: make(map[string]bool),
	}
}

// HasWallet is O(1) and touches no disk.
func (r *Registry) HasWallet(tenant domain.TenantID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.tenants[tenant]
	return ok && len(idx.order) > 0
}

// Count returns how many wallets the tenant holds.
func (r *Registry) Count(tenant domain.TenantID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx, ok := r.tenants[tenant]; ok {
		return len(idx.order)
	}
	return 0
}

// Register adds a freshly stored wallet to the index. The tenant's first
// wallet becomes active automatically.
func (r *Registry) Register(tenant domain.TenantID, header domain.WalletHeader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.tenants[tenant]
	if !ok {
		idx = newTenantIndex()
		r.tenants[tenant] = idx
	}

	if len(idx.order) >= domain.MaxWalletsPerTenant {
		return apperror.ErrWalletLimit(domain.MaxWalletsPerTenant)
	}
	if _, exists := idx.headers[header.WalletID]; exists {
		return fmt.Errorf("wallet %s already registered", header.WalletID)
	}

	idx.order = append(idx.order, header.WalletID)
	if len(idx.order) == 1 {
		header.Active = true
		idx.activeID = header.WalletID
	}
	idx.headers[header.WalletID] = header
	return nil
}

// Deregister undoes a Register whose record never made it to disk. If the
// removed wallet held the active slot, the oldest remaining wallet takes
// it back.
func (r *Registry) Deregister(tenant domain.TenantID, walletID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.tenants[tenant]
	if !ok {
		return
	}
	if _, owns := idx.headers[walletID]; !owns {
		return
	}

	delete(idx.headers, walletID)
	delete(idx.unusable, walletID)
	for i, id := range idx.order {
		if id == walletID {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}

	if idx.activeID == walletID {
		idx.activeID = ""
		if len(idx.order) > 0 {
			idx.activeID = idx.order[0]
			h := idx.headers[idx.activeID]
			h.Active = true
			idx.headers[idx.activeID] = h
		}
	}
}

// Headers returns the tenant's wallet headers in creation order.
func (r *Registry) Headers(tenant domain.TenantID) []domain.WalletHeader {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.tenants[tenant]
	if !ok {
		return nil
	}
	headers := make([]domain.WalletHeader, 0, len(idx.order))
	for _, id := range idx.order {
		headers = append(headers, idx.headers[id])
	}
	return headers
}

// ActiveID returns the tenant's active wallet id.
func (r *Registry) ActiveID(tenant domain.TenantID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.tenants[tenant]
	if !ok || len(idx.order) == 0 {
		return "", apperror.ErrNoActiveWallet()
	}
	return idx.activeID, nil
}

// Owns reports whether the wallet id belongs to the tenant.
func (r *Registry) Owns(tenant domain.TenantID, walletID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.tenants[tenant]
	if !ok {
		return false
	}
	_, owns := idx.headers[walletID]
	return owns
}

// SetActive flips the active wallet. A wallet id not owned by the tenant
// (including one guessed from another tenant) is not-found and mutates
// nothing.
func (r *Registry) SetActive(tenant domain.TenantID, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.tenants[tenant]
	if !ok {
		return apperror.ErrWalletNotFound()
	}
	if _, owns := idx.headers[walletID]; !owns {
		return apperror.ErrWalletNotFound()
	}

	if prev, ok := idx.headers[idx.activeID]; ok {
		prev.Active = false
		idx.headers[idx.activeID] = prev
	}
	next := idx.headers[walletID]
	next.Active = true
	idx.headers[walletID] = next
	idx.activeID = walletID
	return nil
}

// MarkUnusable flags a wallet after an integrity failure. The stored
// ciphertext stays untouched for forensic recovery; the mark only stops
// further signing attempts this process lifetime.
func (r *Registry) MarkUnusable(tenant domain.TenantID, walletID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.tenants[tenant]; ok {
		idx.unusable[walletID] = true
	}
}

// IsUnusable reports whether the wallet was marked after an integrity
// failure.
func (r *Registry) IsUnusable(tenant domain.TenantID, walletID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.tenants[tenant]
	return ok && idx.unusable[walletID]
}
