package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc", RunMode: "longpoll"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = ""
	cfg.Catalog = CatalogConfig{}

	if err := Normalize(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q", cfg.Telegram.RunMode)
	}
	if cfg.Catalog.Source != CatalogSourceBuiltin {
		t.Errorf("catalog source = %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.PageSize != 3 {
		t.Errorf("page size = %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.City == "" {
		t.Error("city not defaulted")
	}
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"

	if err := Normalize(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing token", func(c *Config) { c.Telegram.Token = "" }, "token"},
		{"bad run mode", func(c *Config) { c.Telegram.RunMode = "carrier-pigeon" }, "run_mode"},
		{"webhook without url", func(c *Config) { c.Telegram.RunMode = "webhook" }, "webhook.url"},
		{"bad catalog source", func(c *Config) { c.Catalog.Source = "csv" }, "catalog.source"},
		{"yaml without path", func(c *Config) { c.Catalog.Source = "yaml" }, "catalog.path"},
		{"postgres without host", func(c *Config) { c.Catalog.Source = "postgres" }, "database.host"},
		{"negative page size", func(c *Config) { c.Catalog.PageSize = -1 }, "page_size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Normalize(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
telegram:
  token: "file-token"
  run_mode: longpoll
catalog:
  source: builtin
  city: "Riverton"
  page_size: 3
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("CATALOG_CITY", "Lakeview")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Telegram.Token != "env-token" {
		t.Errorf("token = %q, env must win over file", cfg.Telegram.Token)
	}
	if cfg.Catalog.City != "Lakeview" {
		t.Errorf("city = %q", cfg.Catalog.City)
	}
	if cfg.Catalog.PageSize != 3 {
		t.Errorf("page size = %d", cfg.Catalog.PageSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
