package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"custodial-wallet-vault/internal/core/domain"
	"custodial-wallet-vault/pkg/apperror"
)

const (
	envelopeSaltLen = 32
	envelopeKeyLen  = 32 // AES-256
	kdfHashName     = "sha256"

	// DefaultKDFIterations is the PBKDF2 floor; deriving a wallet key is
	// deliberately slow so a leaked vault directory resists brute force.
	DefaultKDFIterations = 100_000
)

// AESEnvelopeCipher implements ports.EnvelopeCipher: PBKDF2-SHA256 key
// derivation over {master secret, tenant id, per-wallet salt}, then
// AES-256-GCM with the tenant id as associated data, so an envelope lifted
// into another tenant's record fails to open.
type AESEnvelopeCipher struct {
	master     []byte
	iterations int
}

// NewAESEnvelopeCipher creates the cipher around the process-wide master
// key. The key is copied; the caller may zero its slice.
func NewAESEnvelopeCipher(masterKey []byte, iterations int) (*AESEnvelopeCipher, error) {
	if len(masterKey) != envelopeKeyLen {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", envelopeKeyLen, len(masterKey))
	}
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}
	master := make([]byte, len(masterKey))
	copy(master, masterKey)
	return &AESEnvelopeCipher{master: master, iterations: iterations}, nil
}

// Seal encrypts plaintext under a fresh per-wallet key and nonce.
func (c *AESEnvelopeCipher) Seal(tenant domain.TenantID, plaintext []byte) (*domain.Envelope, error) {
	salt := make([]byte, envelopeSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	key := c.deriveKey(tenant, salt, c.iterations)
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	sealed := aesGCM.Seal(nil, nonce, plaintext, []byte(tenant.String()))
	tagStart := len(sealed) - aesGCM.Overhead()

	return &domain.Envelope{
		CipherText: sealed[:tagStart],
		Nonce:      nonce,
		AuthTag:    sealed[tagStart:],
		Salt:       salt,
		KDF:        domain.KDFParams{Iterations: c.iterations, Hash: kdfHashName},
	}, nil
}

// Open decrypts an envelope, failing closed on any integrity violation.
// Envelopes sealed under an older iteration count remain openable because
// the count travels with the envelope.
func (c *AESEnvelopeCipher) Open(tenant domain.TenantID, env *domain.Envelope) ([]byte, error) {
	if env.KDF.Hash != "" && env.KDF.Hash != kdfHashName {
		return nil, apperror.ErrIntegrity(fmt.Errorf("unsupported kdf hash %q", env.KDF.Hash))
	}
	iterations := env.KDF.Iterations
	if iterations <= 0 {
		iterations = c.iterations
	}

	key := c.deriveKey(tenant, env.Salt, iterations)
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aesGCM.NonceSize() {
		return nil, apperror.ErrIntegrity(fmt.Errorf("nonce length %d", len(env.Nonce)))
	}

	sealed := make([]byte, 0, len(env.CipherText)+len(env.AuthTag))
	sealed = append(sealed, env.CipherText...)
	sealed = append(sealed, env.AuthTag...)

	plaintext, err := aesGCM.Open(nil, env.Nonce, sealed, []byte(tenant.String()))
	if err != nil {
		return nil, apperror.ErrIntegrity(err)
	}
	return plaintext, nil
}

func (c *AESEnvelopeCipher) deriveKey(tenant domain.TenantID, salt []byte, iterations int) []byte {
	secret := make([]byte, 0, len(c.master)+1+len(tenant.String()))
	secret = append(secret, c.master...)
	secret = append(secret, ':')
	secret = append(secret, tenant.String()...)
	defer clear(secret)

	return pbkdf2.Key(secret, salt, iterations, envelopeKeyLen, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aesGCM, nil
}
