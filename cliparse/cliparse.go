package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKey     string
	VoteRate     float64 // votes per second per client
	VoteBurst    int
	TrustProxy   bool // take client IPs from X-Forwarded-For / X-Real-IP
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone and a missing file is ignored.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("premios", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin API key (prefer env)")

	fs.Float64Var(&cfg.VoteRate, "vote-rate", 0, "Votes per second allowed per client")
	fs.IntVar(&cfg.VoteBurst, "vote-burst", 0, "Vote burst allowed per client")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Take client IPs from X-Forwarded-For (only behind a proxy)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	if !set["vote-rate"] {
		if s := os.Getenv("VOTE_RATE"); s != "" {
			rate, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Config{}, errors.New("invalid VOTE_RATE env variable")
			}
			cfg.VoteRate = rate
		} else {
			cfg.VoteRate = 5
		}
	}
	if !set["vote-burst"] {
		if s := os.Getenv("VOTE_BURST"); s != "" {
			burst, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid VOTE_BURST env variable")
			}
			cfg.VoteBurst = burst
		} else {
			cfg.VoteBurst = 10
		}
	}
	if math.IsNaN(cfg.VoteRate) || math.IsInf(cfg.VoteRate, 0) || cfg.VoteRate < 0 {
		return Config{}, fmt.Errorf("vote rate must be a finite number >= 0, got %v", cfg.VoteRate)
	}
	if cfg.VoteBurst < 1 {
		return Config{}, errors.New("vote burst must be at least 1")
	}

	if !set["trust-proxy"] {
		if s := os.Getenv("TRUST_PROXY"); s != "" {
			trust, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = trust
		}
	}

	return cfg, nil
}
