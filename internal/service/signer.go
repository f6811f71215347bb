package service

import (
	"crypto/ed25519"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"

	"custodial-wallet-vault/internal/core/ports"
)

// transientSigner is a signing capability scoped to a single operation.
// Callers receive it, use it, and drop it; the vault never caches one.
type transientSigner struct {
	key     solana.PrivateKey
	address string
}

func (s *transientSigner) Address() string {
	return s.address
}

func (s *transientSigner) Sign(message []byte) ([]byte, error) {
	sig, err := s.key.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("signing: %w", err)
	}
	return sig[:], nil
}

var _ ports.Signer = (*transientSigner)(nil)

// newMnemonic produces a fresh 12-word recovery phrase.
func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", fmt.Errorf("generating entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generating mnemonic: %w", err)
	}
	return mnemonic, nil
}

// keypairFromMnemonic derives the wallet's ed25519 keypair from the
// mnemonic seed. The derivation is deterministic: exporting the mnemonic
// later always reconstructs exactly this signing key.
func keypairFromMnemonic(mnemonic string) (solana.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")
	priv := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	return solana.PrivateKey(priv), nil
}
