package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/dynucert/internal/config"
	dnsproviders "nathanbeddoewebdev/dynucert/internal/dns/providers"
	"nathanbeddoewebdev/dynucert/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  dynucert config set dns-provider dynu\n" +
			"  dynucert config set acme-email you@example.com\n" +
			"  dynucert config set propagation-seconds 120",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map have no extra validation.
var validators = map[string]func(value string) error{
	"dns-provider": validateProvider,
}

func runSet(cmd *cobra.Command, args []string) error {
	key := util.NormalizeKey(args[0])
	value := strings.TrimSpace(args[1])

	spec := config.Lookup(key)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)",
			args[0], strings.Join(config.KeyNames(), ", "))
	}

	if validate, ok := validators[spec.Name]; ok {
		if err := validate(value); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Values keep their case: cert-dir is a path, acme-email an address.
	if err := spec.Set(cfg, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, spec.Get(cfg))
	return nil
}

// validateProvider checks that the given name is a registered DNS provider.
func validateProvider(name string) error {
	normalized := util.NormalizeKey(name)
	known := dnsproviders.List()
	for _, p := range known {
		if p == normalized {
			return nil
		}
	}
	return fmt.Errorf("unknown provider %q (registered: %v)", name, known)
}
