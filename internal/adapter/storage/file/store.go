// Package file persists encrypted wallet records as one JSON file per
// (tenant, wallet) pair under an isolated per-tenant subdirectory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"custodial-wallet-vault/internal/core/domain"
	"custodial-wallet-vault/internal/core/ports"
	"custodial-wallet-vault/pkg/apperror"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// Store implements ports.SecretStore on the local filesystem. Records hold
// ciphertext plus non-secret metadata only; directory and file permissions
// restrict access to the owning process account.
type Store struct {
	root string
}

// New creates the store and its root directory.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("vault root directory is required")
	}
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("creating vault root: %w", err)
	}
	return &Store{root: root}, nil
}

// Save writes the record via a temp file in the target directory followed
// by a rename, so a crash mid-write never exposes a partial ciphertext.
func (s *Store) Save(_ context.Context, tenant domain.TenantID, record *domain.WalletRecord) error {
	path, err := s.recordPath(tenant, record.WalletID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating tenant directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling wallet record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".wallet-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("installing record: %w", err)
	}
	return nil
}

// Load reads one record. A missing record is not-found; an unreadable or
// corrupt one is a distinct internal error so callers never conflate them.
func (s *Store) Load(_ context.Context, tenant domain.TenantID, walletID string) (*domain.WalletRecord, error) {
	path, err := s.recordPath(tenant, walletID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.ErrWalletNotFound()
		}
		return nil, fmt.Errorf("reading wallet record: %w", err)
	}

	var record domain.WalletRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling wallet record %s/%s: %w", tenant, walletID, err)
	}
	return &record, nil
}

// ListTenant returns every record for the tenant, oldest first. A tenant
// with no directory simply has no wallets.
func (s *Store) ListTenant(ctx context.Context, tenant domain.TenantID) ([]*domain.WalletRecord, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, tenant.String()))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing tenant directory: %w", err)
	}

	var records []*domain.WalletRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		record, err := s.Load(ctx, tenant, strings.TrimSuffix(name, ".json"))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

// ListTenants enumerates every tenant with a record directory.
func (s *Store) ListTenants(_ context.Context) ([]domain.TenantID, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("listing vault root: %w", err)
	}

	var tenants []domain.TenantID
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if id, ok := domain.ParseTenantID(entry.Name()); ok {
			tenants = append(tenants, id)
		}
	}
	return tenants, nil
}

// recordPath validates both path components against their allow-lists
// before joining, so crafted ids cannot traverse out of the vault root.
func (s *Store) recordPath(tenant domain.TenantID, walletID string) (string, error) {
	if tenant < 0 {
		return "", apperror.Validation("invalid tenant id")
	}
	if !domain.ValidWalletID(walletID) {
		return "", apperror.Validation("invalid wallet id")
	}
	return filepath.Join(s.root, tenant.String(), walletID+".json"), nil
}

var _ ports.SecretStore = (*Store)(nil)
