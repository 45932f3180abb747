package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultLookbackMinutes is used when LOOKBACK_MINUTES is unset.
const DefaultLookbackMinutes = 60

// DefaultIgnoredAccounts are the Atlas agents whose logins never count as
// user activity.
var DefaultIgnoredAccounts = []string{
	"mms-automation",
	"mms-monitoring-agent",
}

// SweepConfig is the immutable configuration for one sweep run. It is built
// once from the environment at startup and passed down; nothing mutates it
// afterwards.
type SweepConfig struct {
	PublicKey  string
	PrivateKey string
	OrgID      string // optional; empty means every project the key can see

	LookbackMinutes   int
	ExcludedProjects  map[string]struct{}
	IgnoredAccountIDs map[string]struct{}
	DryRun            bool
}

// Load reads the sweep configuration from the environment. A .env file in
// the working directory is honored when present. The returned config has
// already passed Validate.
func Load() (*SweepConfig, error) {
	_ = godotenv.Load()

	cfg := &SweepConfig{
		PublicKey:        os.Getenv("ATLAS_PUBLIC_KEY"),
		PrivateKey:       os.Getenv("ATLAS_PRIVATE_KEY"),
		OrgID:            os.Getenv("ATLAS_ORG_ID"),
		LookbackMinutes:  DefaultLookbackMinutes,
		ExcludedProjects: toSet(splitList(os.Getenv("EXCLUDED_PROJECT_NAMES"))),
	}

	if v := os.Getenv("LOOKBACK_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("LOOKBACK_MINUTES %q is not an integer: %w", v, err)
		}
		cfg.LookbackMinutes = n
	}

	ignored := DefaultIgnoredAccounts
	if v := os.Getenv("IGNORED_ACCOUNT_IDS"); v != "" {
		ignored = splitList(v)
	}
	cfg.IgnoredAccountIDs = toSet(ignored)

	if v := os.Getenv("DRY_RUN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DRY_RUN %q is not a boolean: %w", v, err)
		}
		cfg.DryRun = b
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the sweep must not act on. This is the
// only run-fatal error category: acting on a bad configuration would be
// wrong for every cluster, while per-cluster failures are merely recorded.
func (c *SweepConfig) Validate() error {
	if c.PublicKey == "" || c.PrivateKey == "" {
		return fmt.Errorf("ATLAS_PUBLIC_KEY and ATLAS_PRIVATE_KEY must be set")
	}
	if c.LookbackMinutes < 0 {
		return fmt.Errorf("lookback minutes must not be negative, got %d", c.LookbackMinutes)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
