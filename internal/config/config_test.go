package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.DNSProvider != "" {
		t.Errorf("DNSProvider = %q, want empty", cfg.DNSProvider)
	}
	if got := cfg.Propagation(); got != DefaultPropagationSeconds*time.Second {
		t.Errorf("Propagation = %v, want %v", got, DefaultPropagationSeconds*time.Second)
	}
	if got := cfg.TTL(); got != DefaultChallengeTTL {
		t.Errorf("TTL = %d, want %d", got, DefaultChallengeTTL)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{
		DNSProvider:        "dynu",
		ACMEEmail:          "ops@example.com",
		ACMEStaging:        true,
		PropagationSeconds: 60,
		ChallengeTTL:       120,
		CertDir:            "/tmp/certs",
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestKeys_SetAndGet(t *testing.T) {
	cfg := &Config{}

	cases := []struct {
		key   string
		value string
		want  string
	}{
		{"dns-provider", "Dynu", "dynu"},
		{"acme-email", "me@example.com", "me@example.com"},
		{"acme-staging", "true", "true"},
		{"propagation-seconds", "90", "90"},
		{"challenge-ttl", "60", "60"},
		{"cert-dir", "/etc/dynucert", "/etc/dynucert"},
	}

	for _, tc := range cases {
		spec := Lookup(tc.key)
		if spec == nil {
			t.Fatalf("Lookup(%q) returned nil", tc.key)
		}
		if err := spec.Set(cfg, tc.value); err != nil {
			t.Fatalf("Set(%q, %q) failed: %v", tc.key, tc.value, err)
		}
		if got := spec.Get(cfg); got != tc.want {
			t.Errorf("Get(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestKeys_SetRejectsBadValues(t *testing.T) {
	cfg := &Config{}

	bad := map[string]string{
		"acme-staging":        "maybe",
		"propagation-seconds": "-5",
		"challenge-ttl":       "soon",
	}
	for key, value := range bad {
		spec := Lookup(key)
		if spec == nil {
			t.Fatalf("Lookup(%q) returned nil", key)
		}
		if err := spec.Set(cfg, value); err == nil {
			t.Errorf("Set(%q, %q) = nil, want error", key, value)
		}
	}
}

func TestLookup_UnknownKey(t *testing.T) {
	if spec := Lookup("no-such-key"); spec != nil {
		t.Errorf("Lookup returned %+v for unknown key", spec)
	}
}
