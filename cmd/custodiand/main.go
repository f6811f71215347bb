package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"custodial-wallet-vault/config"
	solanaChain "custodial-wallet-vault/internal/adapter/chain/solana"
	fileStorage "custodial-wallet-vault/internal/adapter/storage/file"
	"custodial-wallet-vault/internal/service"
	"custodial-wallet-vault/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("vault_root", cfg.Vault.Root).
		Str("rpc_url", cfg.Chain.RPCURL).
		Msg("Starting custodial wallet vault")

	// The master secret is the root of every wallet key; refusing to start
	// beats running with a missing or weak one.
	masterKey, err := cfg.Vault.MasterKey()
	if err != nil {
		log.Fatal().Err(err).Msg("Master secret rejected")
	}

	store, err := fileStorage.New(cfg.Vault.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open vault directory")
	}

	cipher, err := service.NewAESEnvelopeCipher(masterKey, cfg.Vault.KDFIterations)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize envelope cipher")
	}
	clear(masterKey)

	ctx := context.Background()

	registry, err := service.NewRegistry(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to rehydrate wallet registry")
	}
	log.Info().Msg("Wallet registry rehydrated")

	chain := solanaChain.New(cfg.Chain.RPCURL)

	limiter := func(c config.LimitClass) *service.KeyedLimiter {
		return service.NewKeyedLimiter(c.Window, c.Threshold, c.Cooldown)
	}
	limiters := service.VaultLimiters{
		ExportKey:      limiter(cfg.Limits.ExportKey),
		ExportMnemonic: limiter(cfg.Limits.ExportMnemonic),
		Withdraw:       limiter(cfg.Limits.Withdraw),
		Market:         limiter(cfg.Limits.Market),
	}

	vault := service.NewVault(store, cipher, registry, chain, limiters, service.VaultOptions{
		RPCTimeout:         cfg.Chain.RPCTimeout,
		FeeReserveLamports: cfg.Chain.FeeReserveLamports,
	}, log)

	// Startup sweep: decrypt-and-discard every tenant's active wallet so a
	// corrupted vault directory is noticed before the first user operation.
	tenants, err := store.ListTenants(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to enumerate tenants")
	}
	for _, tenant := range tenants {
		ok, err := vault.VerifyWalletIntegrity(ctx, tenant)
		if err != nil {
			log.Warn().Err(err).Str("tenant", tenant.String()).Msg("Integrity sweep error")
			continue
		}
		if !ok {
			log.Error().Str("tenant", tenant.String()).Msg("Active wallet failed integrity check")
		}
	}

	log.Info().Int("tenants", len(tenants)).Msg("Vault ready")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	log.Info().Msg("Vault exited")
}
