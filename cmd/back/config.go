package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/internal/account"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	defaultConfigPath = "./config.yaml"
	defaultProgramID  = "2QbyGjgHS6dyZtoi7g1M69Fi3mhqpVVoP84g1DLrvnrF"
)

type Config struct {
	DSN                 string        `yaml:"dsn"`
	Host                string        `yaml:"host"`
	HostGRPC            string        `yaml:"host_grpc"`
	HostMetrics         string        `yaml:"host_metrics"`
	MigrateDir          string        `yaml:"migrate_dir"`
	Driver              string        `yaml:"driver"`
	LogLevel            int           `yaml:"loglevel"`
	TimeOut             time.Duration `yaml:"timeout"`
	TokenMaxTTL         time.Duration `yaml:"token_max_ttl"`
	ProgramID           string        `yaml:"program_id"`
	Rent                ledger.Rent   `yaml:"rent"`
	Faucet              bool          `yaml:"faucet"`
	FaucetMaxLamports   uint64        `yaml:"faucet_max_lamports"`
	AddrCache           string        `yaml:"addr_cache"`
	PasswordCache       string        `yaml:"password_cache"`
	DBCacheTweet        int           `yaml:"db_cache_tweet"`
	DBCacheAuthorTweets int           `yaml:"db_cache_author_tweets"`
	CacheTTL            time.Duration `yaml:"cache_ttl"`
	HostRBMQ            string        `yaml:"host_rbmq"`
	PortRBMQ            string        `yaml:"port_rbmq"`
	UserNameRBMQ        string        `yaml:"username_rbmq"`
	PasswordRBMQ        string        `yaml:"password_rbmq"`
	VHostRBMQ           string        `yaml:"vhost_rbmq"`
}

func DefaultConfig() Config {
	return Config{
		Host:                ":8080",
		HostGRPC:            ":9000",
		HostMetrics:         ":9090",
		MigrateDir:          "file://migrations",
		Driver:              DriverPostgres,
		TimeOut:             5 * time.Second,
		TokenMaxTTL:         5 * time.Minute,
		ProgramID:           defaultProgramID,
		Rent:                ledger.DefaultRent(),
		FaucetMaxLamports:   2_000_000_000,
		DBCacheTweet:        0,
		DBCacheAuthorTweets: 1,
		CacheTTL:            10 * time.Minute,
		PortRBMQ:            "5672",
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}

// LoadConfig читает yaml поверх значений по умолчанию
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	yamlConfig, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(yamlConfig, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("config: dsn is required for driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("config: unknown driver %q", c.Driver)
	}
	if c.HostGRPC == "" || c.Host == "" {
		return fmt.Errorf("config: host and host_grpc are required")
	}
	if c.TokenMaxTTL <= 0 {
		return fmt.Errorf("config: token_max_ttl must be positive")
	}
	if c.Rent.LamportsPerByteYear == 0 || c.Rent.ExemptionThreshold <= 0 {
		return fmt.Errorf("config: rent parameters must be positive")
	}
	if _, err := c.ProgramKey(); err != nil {
		return err
	}
	return nil
}

func (c Config) ProgramKey() (account.PublicKey, error) {
	key, err := account.ParsePublicKey(c.ProgramID)
	if err != nil {
		return account.PublicKey{}, fmt.Errorf("config: program_id: %w", err)
	}
	return key, nil
}
