package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fileStore "custodial-wallet-vault/internal/adapter/storage/file"
	"custodial-wallet-vault/internal/core/domain"
	"custodial-wallet-vault/pkg/apperror"
)

func newEmptyRegistry(t *testing.T) *Registry {
	t.Helper()
	store, err := fileStore.New(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)
	r, err := NewRegistry(context.Background(), store)
	require.NoError(t, err)
	return r
}

func header(id string) domain.WalletHeader {
	return domain.WalletHeader{
		WalletID:  id,
		Label:     "Test",
		Address:   "addr-" + id,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRegistry_FirstWalletAutoActivates(t *testing.T) {
	r := newEmptyRegistry(t)

	assert.False(t, r.HasWallet(42))
	require.NoError(t, r.Register(42, header("first-aaaaaaaa")))

	assert.True(t, r.HasWallet(42))
	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "first-aaaaaaaa", active)
	assert.True(t, r.Headers(42)[0].Active)
}

func TestRegistry_SecondWalletDoesNotStealActive(t *testing.T) {
	r := newEmptyRegistry(t)
	require.NoError(t, r.Register(42, header("first-aaaaaaaa")))
	require.NoError(t, r.Register(42, header("second-bbbbbbbb")))

	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "first-aaaaaaaa", active)
}

func TestRegistry_CapacityLimit(t *testing.T) {
	r := newEmptyRegistry(t)
	for i := 0; i < domain.MaxWalletsPerTenant; i++ {
		require.NoError(t, r.Register(42, header(fmt.Sprintf("wallet-%08d", i))))
	}

	err := r.Register(42, header("sixth-ffffffff"))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindCapacity))

	// The existing five are untouched.
	headers := r.Headers(42)
	require.Len(t, headers, domain.MaxWalletsPerTenant)
	assert.Equal(t, "wallet-00000000", headers[0].WalletID)

	// Another tenant is unaffected by the full one.
	require.NoError(t, r.Register(7, header("other-00000000")))
}

func TestRegistry_SetActive(t *testing.T) {
	r := newEmptyRegistry(t)
	require.NoError(t, r.Register(42, header("first-aaaaaaaa")))
	require.NoError(t, r.Register(42, header("second-bbbbbbbb")))

	require.NoError(t, r.SetActive(42, "second-bbbbbbbb"))

	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "second-bbbbbbbb", active)

	// Exactly one header carries the flag.
	var flagged int
	for _, h := range r.Headers(42) {
		if h.Active {
			flagged++
			assert.Equal(t, "second-bbbbbbbb", h.WalletID)
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestRegistry_SetActive_CrossTenantGuessRejected(t *testing.T) {
	r := newEmptyRegistry(t)
	require.NoError(t, r.Register(1, header("mine-aaaaaaaa")))
	require.NoError(t, r.Register(2, header("theirs-bbbbbbbb")))

	err := r.SetActive(1, "theirs-bbbbbbbb")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// Neither tenant's active wallet moved.
	active1, _ := r.ActiveID(1)
	active2, _ := r.ActiveID(2)
	assert.Equal(t, "mine-aaaaaaaa", active1)
	assert.Equal(t, "theirs-bbbbbbbb", active2)
}

func TestRegistry_SetActive_UnknownTenant(t *testing.T) {
	r := newEmptyRegistry(t)
	err := r.SetActive(99, "anything-00000000")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRegistry_UnusableMark(t *testing.T) {
	r := newEmptyRegistry(t)
	require.NoError(t, r.Register(42, header("first-aaaaaaaa")))

	assert.False(t, r.IsUnusable(42, "first-aaaaaaaa"))
	r.MarkUnusable(42, "first-aaaaaaaa")
	assert.True(t, r.IsUnusable(42, "first-aaaaaaaa"))
}

func TestRegistry_RehydratesFromStore(t *testing.T) {
	ctx := context.Background()
	store, err := fileStore.New(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)

	save := func(tenant domain.TenantID, id string, createdAt time.Time, active bool) {
		require.NoError(t, store.Save(ctx, tenant, &domain.WalletRecord{
			WalletID:  id,
			Label:     "L",
			Address:   "addr-" + id,
			CreatedAt: createdAt,
			Active:    active,
		}))
	}

	base := time.Now().UTC().Add(-time.Hour)
	save(42, "first-aaaaaaaa", base, false)
	save(42, "second-bbbbbbbb", base.Add(time.Minute), true)
	save(7, "lonely-cccccccc", base, true)

	r, err := NewRegistry(ctx, store)
	require.NoError(t, err)

	assert.True(t, r.HasWallet(42))
	assert.True(t, r.HasWallet(7))
	assert.Equal(t, 2, r.Count(42))

	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "second-bbbbbbbb", active)

	headers := r.Headers(42)
	require.Len(t, headers, 2)
	assert.Equal(t, "first-aaaaaaaa", headers[0].WalletID, "creation order preserved")
}

func TestRegistry_RehydrateResolvesDoubleActive(t *testing.T) {
	ctx := context.Background()
	store, err := fileStore.New(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)

	// A crash between the two saves of an active flip leaves both the old
	// and the new wallet flagged. The flip wrote its target with a fresh
	// update stamp, so the newer stamp identifies the intended winner,
	// regardless of creation order.
	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, store.Save(ctx, 42, &domain.WalletRecord{
		WalletID: "first-aaaaaaaa", Address: "a",
		CreatedAt: base, UpdatedAt: base, Active: true,
	}))
	require.NoError(t, store.Save(ctx, 42, &domain.WalletRecord{
		WalletID: "second-bbbbbbbb", Address: "b",
		CreatedAt: base.Add(time.Minute), UpdatedAt: base.Add(30 * time.Minute), Active: true,
	}))

	r, err := NewRegistry(ctx, store)
	require.NoError(t, err)

	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "second-bbbbbbbb", active)

	// The stale flag is cleared in the rebuilt headers.
	var flagged int
	for _, h := range r.Headers(42) {
		if h.Active {
			flagged++
			assert.Equal(t, "second-bbbbbbbb", h.WalletID)
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestRegistry_Deregister(t *testing.T) {
	r := newEmptyRegistry(t)
	require.NoError(t, r.Register(42, header("first-aaaaaaaa")))
	require.NoError(t, r.Register(42, header("second-bbbbbbbb")))

	r.Deregister(42, "second-bbbbbbbb")

	assert.Equal(t, 1, r.Count(42))
	assert.False(t, r.Owns(42, "second-bbbbbbbb"))

	// Removing the active wallet hands the slot to the oldest survivor.
	r.Deregister(42, "first-aaaaaaaa")
	require.NoError(t, r.Register(42, header("third-cccccccc")))
	require.NoError(t, r.Register(42, header("fourth-dddddddd")))
	require.NoError(t, r.SetActive(42, "fourth-dddddddd"))
	r.Deregister(42, "fourth-dddddddd")

	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "third-cccccccc", active)
	assert.True(t, r.Headers(42)[0].Active)
}

func TestRegistry_RehydrateNormalizesActiveFlag(t *testing.T) {
	ctx := context.Background()
	store, err := fileStore.New(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)

	// An interrupted flip can leave zero flags on disk; the oldest wallet
	// becomes active again on rehydrate.
	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, store.Save(ctx, 42, &domain.WalletRecord{
		WalletID: "first-aaaaaaaa", Address: "a", CreatedAt: base,
	}))
	require.NoError(t, store.Save(ctx, 42, &domain.WalletRecord{
		WalletID: "second-bbbbbbbb", Address: "b", CreatedAt: base.Add(time.Minute),
	}))

	r, err := NewRegistry(ctx, store)
	require.NoError(t, err)

	active, err := r.ActiveID(42)
	require.NoError(t, err)
	assert.Equal(t, "first-aaaaaaaa", active)

	// The rebuilt header carries the restored flag.
	assert.True(t, r.Headers(42)[0].Active)
}
