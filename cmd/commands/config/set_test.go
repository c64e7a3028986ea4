package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/dynucert/internal/config"
	dnsdomain "nathanbeddoewebdev/dynucert/internal/dns/domain"
	dnsproviders "nathanbeddoewebdev/dynucert/internal/dns/providers"
	"nathanbeddoewebdev/dynucert/internal/services/auth"
)

// setupTestConfig points the config package at a temp file.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// registerTestProvider registers a stub provider in the global registry.
func registerTestProvider(t *testing.T, name string) {
	t.Helper()
	dnsproviders.Reset()
	t.Cleanup(dnsproviders.Reset)
	dnsproviders.Register(name, func(store auth.Store) (dnsdomain.Provider, error) {
		return nil, nil
	})
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_DNSProvider(t *testing.T) {
	setupTestConfig(t)
	registerTestProvider(t, "dynu")

	stdout, stderr := execConfig(t, "set", "dns-provider", "dynu")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"dynu"`) {
		t.Errorf("expected confirmation with provider name, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DNSProvider != "dynu" {
		t.Errorf("expected DNSProvider %q, got %q", "dynu", cfg.DNSProvider)
	}
}

func TestSet_DNSProvider_Unknown(t *testing.T) {
	setupTestConfig(t)
	registerTestProvider(t, "dynu")

	_, stderr := execConfig(t, "set", "dns-provider", "nonexistent")

	if !strings.Contains(stderr, "unknown provider") {
		t.Errorf("expected 'unknown provider' error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestSet_PropagationSeconds(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "propagation-seconds", "240")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "240") {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PropagationSeconds != 240 {
		t.Errorf("PropagationSeconds = %d, want 240", cfg.PropagationSeconds)
	}
}

func TestSet_PropagationSeconds_RejectsGarbage(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "propagation-seconds", "soon")
	if !strings.Contains(stderr, "propagation-seconds") {
		t.Errorf("expected parse error, got: %s", stderr)
	}
}

func TestSet_CertDir_KeepsCase(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "cert-dir", "/Etc/TLS/Certs")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CertDir != "/Etc/TLS/Certs" {
		t.Errorf("CertDir = %q, path case must be preserved", cfg.CertDir)
	}
}
