package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "acme-email").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save). It returns an error when
	// the value cannot be parsed for the key's type.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "dns-provider",
		Description: "DNS provider used when --provider is not specified",
		Get:         func(cfg *Config) string { return cfg.DNSProvider },
		Set: func(cfg *Config, v string) error {
			cfg.DNSProvider = strings.ToLower(strings.TrimSpace(v))
			return nil
		},
	},
	{
		Name:        "acme-email",
		Description: "Contact email for the ACME account",
		Get:         func(cfg *Config) string { return cfg.ACMEEmail },
		Set: func(cfg *Config, v string) error {
			cfg.ACMEEmail = strings.TrimSpace(v)
			return nil
		},
	},
	{
		Name:        "acme-staging",
		Description: "Use the Let's Encrypt staging directory (true/false)",
		Get:         func(cfg *Config) string { return strconv.FormatBool(cfg.ACMEStaging) },
		Set: func(cfg *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("acme-staging must be true or false, got %q", v)
			}
			cfg.ACMEStaging = b
			return nil
		},
	},
	{
		Name:        "propagation-seconds",
		Description: "Seconds to wait for challenge records to propagate",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.PropagationSeconds) },
		Set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				return fmt.Errorf("propagation-seconds must be a non-negative integer, got %q", v)
			}
			cfg.PropagationSeconds = n
			return nil
		},
	},
	{
		Name:        "challenge-ttl",
		Description: "TTL in seconds for challenge TXT records",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.ChallengeTTL) },
		Set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				return fmt.Errorf("challenge-ttl must be a non-negative integer, got %q", v)
			}
			cfg.ChallengeTTL = n
			return nil
		},
	},
	{
		Name:        "cert-dir",
		Description: "Directory where obtained certificates are written",
		Get:         func(cfg *Config) string { return cfg.CertDir },
		Set: func(cfg *Config, v string) error {
			cfg.CertDir = strings.TrimSpace(v)
			return nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
