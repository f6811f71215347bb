// Package solana adapts the gagliardetto/solana-go RPC client to the
// vault's ChainClient port: confirmed balance reads and signed native
// transfers, nothing more.
package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"custodial-wallet-vault/internal/core/ports"
	"custodial-wallet-vault/pkg/apperror"
)

const privateKeyLen = 64 // full ed25519 key, seed + public half

// Client implements ports.ChainClient against a single RPC endpoint.
type Client struct {
	rpcClient *rpc.Client
	endpoint  string
}

// New creates a client bound to the endpoint. No connection is opened until
// the first call.
func New(endpoint string) *Client {
	return &Client{
		rpcClient: rpc.New(endpoint),
		endpoint:  endpoint,
	}
}

// Endpoint returns the RPC URL this client is bound to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ValidateAddress checks base58 public-key syntax without touching the
// network.
func (c *Client) ValidateAddress(address string) error {
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return apperror.Validation("invalid destination address")
	}
	return nil
}

// Balance returns the confirmed balance in lamports.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, apperror.Validation("invalid address")
	}

	out, err := c.rpcClient.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, apperror.ErrNetwork(fmt.Errorf("get balance: %w", err))
	}
	return out.Value, nil
}

// Transfer signs and broadcasts a native transfer and returns the
// transaction signature. No retries: a broadcast is not safely idempotent,
// so failures propagate verbatim.
func (c *Client) Transfer(ctx context.Context, key []byte, toAddress string, amount uint64) (string, error) {
	if len(key) != privateKeyLen {
		return "", fmt.Errorf("invalid private key length: expected %d bytes", privateKeyLen)
	}
	toPubkey, err := solana.PublicKeyFromBase58(toAddress)
	if err != nil {
		return "", apperror.Validation("invalid destination address")
	}

	wallet := solana.PrivateKey(key)
	fromPubkey := wallet.PublicKey()

	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", apperror.ErrNetwork(fmt.Errorf("get latest blockhash: %w", err))
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(amount, fromPubkey, toPubkey).Build(),
		},
		recent.Value.Blockhash,
		solana.TransactionPayer(fromPubkey),
	)
	if err != nil {
		return "", fmt.Errorf("building transaction: %w", err)
	}

	if _, err := tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
		if fromPubkey.Equals(pub) {
			return &wallet
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("signing transaction: %w", err)
	}

	sig, err := c.rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		// An RPC-level error means the node looked at the transaction and
		// refused it; anything else is the network.
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return "", apperror.ErrTransactionRejected(rpcErr.Message, err)
		}
		return "", apperror.ErrNetwork(fmt.Errorf("send transaction: %w", err))
	}

	return sig.String(), nil
}

var _ ports.ChainClient = (*Client)(nil)
