package config

import (
	"strings"
	"testing"
)

// setBaseEnv gives Load a valid minimal environment; individual subtests
// override what they need.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ATLAS_PUBLIC_KEY", "pub")
	t.Setenv("ATLAS_PRIVATE_KEY", "priv")
	t.Setenv("ATLAS_ORG_ID", "")
	t.Setenv("LOOKBACK_MINUTES", "")
	t.Setenv("EXCLUDED_PROJECT_NAMES", "")
	t.Setenv("IGNORED_ACCOUNT_IDS", "")
	t.Setenv("DRY_RUN", "")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setBaseEnv(t)
		cfg, err := Load()
		if err != nil {
			t.Fatal("load failed", err)
		}
		if cfg.LookbackMinutes != DefaultLookbackMinutes {
			t.Errorf("lookback = %d, want %d", cfg.LookbackMinutes, DefaultLookbackMinutes)
		}
		for _, account := range DefaultIgnoredAccounts {
			if _, ok := cfg.IgnoredAccountIDs[account]; !ok {
				t.Errorf("default ignored accounts should include %s", account)
			}
		}
		if len(cfg.ExcludedProjects) != 0 {
			t.Errorf("expected no excluded projects, got %v", cfg.ExcludedProjects)
		}
		if cfg.DryRun {
			t.Error("dry run should default to off")
		}
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("ATLAS_PUBLIC_KEY", "")
		if _, err := Load(); err == nil {
			t.Error("expected an error without API keys")
		}
	})

	t.Run("LookbackOverride", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("LOOKBACK_MINUTES", "120")
		cfg, err := Load()
		if err != nil {
			t.Fatal("load failed", err)
		}
		if cfg.LookbackMinutes != 120 {
			t.Errorf("lookback = %d, want 120", cfg.LookbackMinutes)
		}
	})

	t.Run("LookbackNotAnInteger", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("LOOKBACK_MINUTES", "soon")
		if _, err := Load(); err == nil {
			t.Error("expected an error for a non-integer lookback")
		}
	})

	t.Run("NegativeLookback", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("LOOKBACK_MINUTES", "-5")
		_, err := Load()
		if err == nil {
			t.Fatal("expected an error for a negative lookback")
		}
		if !strings.Contains(err.Error(), "negative") {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("ExcludedProjectList", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("EXCLUDED_PROJECT_NAMES", "Production, Staging ,,")
		cfg, err := Load()
		if err != nil {
			t.Fatal("load failed", err)
		}
		if len(cfg.ExcludedProjects) != 2 {
			t.Fatalf("expected 2 exclusions, got %v", cfg.ExcludedProjects)
		}
		for _, name := range []string{"Production", "Staging"} {
			if _, ok := cfg.ExcludedProjects[name]; !ok {
				t.Errorf("missing exclusion %s", name)
			}
		}
	})

	t.Run("IgnoredAccountsOverrideReplacesDefaults", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("IGNORED_ACCOUNT_IDS", "svc-backup")
		cfg, err := Load()
		if err != nil {
			t.Fatal("load failed", err)
		}
		if _, ok := cfg.IgnoredAccountIDs["svc-backup"]; !ok {
			t.Error("override should be present")
		}
		if _, ok := cfg.IgnoredAccountIDs["mms-automation"]; ok {
			t.Error("defaults should be replaced, not merged")
		}
	})

	t.Run("DryRun", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DRY_RUN", "true")
		cfg, err := Load()
		if err != nil {
			t.Fatal("load failed", err)
		}
		if !cfg.DryRun {
			t.Error("dry run should be on")
		}
	})

	t.Run("DryRunNotABool", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DRY_RUN", "maybe")
		if _, err := Load(); err == nil {
			t.Error("expected an error for a non-boolean DRY_RUN")
		}
	})
}
