package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"custodial-wallet-vault/pkg/apperror"
)

// Config holds all application configuration.
type Config struct {
	Vault  VaultConfig  `mapstructure:"vault"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Limits LimitsConfig `mapstructure:"limits"`
	Log    LogConfig    `mapstructure:"log"`
}

// VaultConfig configures key storage and derivation.
type VaultConfig struct {
	Root          string `mapstructure:"root"`           // root directory for encrypted wallet records
	MasterSecret  string `mapstructure:"master_secret"`  // 64 hex chars; env only, never a file default
	KDFIterations int    `mapstructure:"kdf_iterations"` // PBKDF2 iteration count
}

// MasterKey decodes and validates the configured master secret.
// The process must refuse to start rather than run with a weak key.
func (v VaultConfig) MasterKey() ([]byte, error) {
	if v.MasterSecret == "" {
		return nil, apperror.ErrMasterSecret(errors.New("CWV_VAULT_MASTER_SECRET is not set"))
	}
	key, err := hex.DecodeString(v.MasterSecret)
	if err != nil {
		return nil, apperror.ErrMasterSecret(fmt.Errorf("decoding hex: %w", err))
	}
	if len(key) != 32 {
		return nil, apperror.ErrMasterSecret(fmt.Errorf("master secret must be 32 bytes, got %d", len(key)))
	}
	if isDegenerate(key) {
		return nil, apperror.ErrMasterSecret(errors.New("master secret is a repeated single byte"))
	}
	return key, nil
}

// isDegenerate catches placeholder keys like all-zeros.
func isDegenerate(key []byte) bool {
	for _, b := range key[1:] {
		if b != key[0] {
			return false
		}
	}
	return true
}

// ChainConfig configures the blockchain RPC endpoint.
type ChainConfig struct {
	RPCURL             string        `mapstructure:"rpc_url"`
	RPCTimeout         time.Duration `mapstructure:"rpc_timeout"`
	FeeReserveLamports uint64        `mapstructure:"fee_reserve_lamports"`
}

// LimitClass configures one rate-limited operation class.
type LimitClass struct {
	Window    time.Duration `mapstructure:"window"`
	Threshold int           `mapstructure:"threshold"`
	Cooldown  time.Duration `mapstructure:"cooldown"`
}

// LimitsConfig holds the per-class throttle settings. Every sensitive
// operation class gets its own independent window/threshold/cooldown.
type LimitsConfig struct {
	ExportKey      LimitClass `mapstructure:"export_key"`
	ExportMnemonic LimitClass `mapstructure:"export_mnemonic"`
	Withdraw       LimitClass `mapstructure:"withdraw"`
	Market         LimitClass `mapstructure:"market"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CWV_ (Custodial Wallet Vault).
// Nested keys use underscore: CWV_VAULT_ROOT, CWV_CHAIN_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("vault.root", "./vault-data")
	v.SetDefault("vault.master_secret", "")
	v.SetDefault("vault.kdf_iterations", 100_000)
	v.SetDefault("chain.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("chain.rpc_timeout", "15s")
	v.SetDefault("chain.fee_reserve_lamports", 5000)
	v.SetDefault("limits.export_key.window", "60s")
	v.SetDefault("limits.export_key.threshold", 3)
	v.SetDefault("limits.export_key.cooldown", "5m")
	v.SetDefault("limits.export_mnemonic.window", "60s")
	v.SetDefault("limits.export_mnemonic.threshold", 3)
	v.SetDefault("limits.export_mnemonic.cooldown", "5m")
	v.SetDefault("limits.withdraw.window", "5m")
	v.SetDefault("limits.withdraw.threshold", 5)
	v.SetDefault("limits.withdraw.cooldown", "10m")
	v.SetDefault("limits.market.window", "60s")
	v.SetDefault("limits.market.threshold", 10)
	v.SetDefault("limits.market.cooldown", "2m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CWV_VAULT_ROOT -> vault.root
	v.SetEnvPrefix("CWV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Vault.KDFIterations < 100_000 {
		return nil, apperror.ErrMasterSecret(
			fmt.Errorf("kdf_iterations %d is below the 100000 floor", cfg.Vault.KDFIterations))
	}

	return &cfg, nil
}
