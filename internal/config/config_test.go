package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func missing(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_KEY", "secret")
	for _, k := range []string{"ADDR", "TLS_CERT", "TLS_KEY", "OPERATOR_LOGIN", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SESSION_TTL", "COOKIE_SECURE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(missing(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.OperatorLogin != "admin" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.RateLimitRPS != 1 || cfg.RateLimitBurst != 3 || cfg.SessionTTL != 30*24*time.Hour {
		t.Errorf("unexpected limits %+v", cfg)
	}
	if cfg.TLS() || cfg.CookieSecure {
		t.Error("TLS must be off without cert and key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_KEY", "secret")
	t.Setenv("ADDR", ":9443")
	t.Setenv("TLS_CERT", "server.crt")
	t.Setenv("TLS_KEY", "server.key")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load(missing(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9443" || !cfg.TLS() || !cfg.CookieSecure {
		t.Errorf("unexpected transport %+v", cfg)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 10 || cfg.SessionTTL != time.Hour {
		t.Errorf("unexpected limits %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"no token key", map[string]string{"TOKEN_KEY": ""}},
		{"bad rps", map[string]string{"TOKEN_KEY": "k", "RATE_LIMIT_RPS": "fast"}},
		{"zero burst", map[string]string{"TOKEN_KEY": "k", "RATE_LIMIT_BURST": "0"}},
		{"bad ttl", map[string]string{"TOKEN_KEY": "k", "SESSION_TTL": "month"}},
		{"bad cookie flag", map[string]string{"TOKEN_KEY": "k", "COOKIE_SECURE": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SESSION_TTL", "COOKIE_SECURE"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(missing(t)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LAPJOINT_TEST_ONLY=1\nTOKEN_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("TOKEN_KEY")
	t.Cleanup(func() {
		os.Unsetenv("TOKEN_KEY")
		os.Unsetenv("LAPJOINT_TEST_ONLY")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(cfg.TokenKey) != "from-file" {
		t.Errorf("expected token key from file, got %q", cfg.TokenKey)
	}
}
