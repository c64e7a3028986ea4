package cert

import (
	"fmt"

	"nathanbeddoewebdev/dynucert/internal/config"
	dnsdomain "nathanbeddoewebdev/dynucert/internal/dns/domain"
	dnsproviders "nathanbeddoewebdev/dynucert/internal/dns/providers"
	"nathanbeddoewebdev/dynucert/internal/services/auth"
	"nathanbeddoewebdev/dynucert/internal/util"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "cert" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "cert",
		Short:             "Obtain certificates via DNS-01 challenges",
		Long:              `Obtain TLS certificates from Let's Encrypt by answering DNS-01 challenges through the configured DNS provider.`,
		PersistentPreRunE: resolveDNSProvider,
	}

	cmd.AddCommand(ObtainCommand())
	cmd.AddCommand(PreflightCommand())

	cmd.PersistentFlags().String("provider", "", "DNS provider to use (overrides default)")

	return cmd
}

// resolveDNSProvider ensures the --provider flag has a value, falling back to
// the dns-provider config key when the flag was not explicitly set.
func resolveDNSProvider(cmd *cobra.Command, args []string) error {
	if cmd.Flag("provider").Changed {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DNSProvider != "" {
		if err := cmd.Flag("provider").Value.Set(cfg.DNSProvider); err != nil {
			return fmt.Errorf("failed to set provider flag: %w", err)
		}
		return nil
	}

	return fmt.Errorf("no DNS provider specified: use --provider flag or set a default with 'dynucert config set dns-provider <name>'")
}

// newProvider builds the DNS provider selected via the --provider flag.
func newProvider(cmd *cobra.Command) (dnsdomain.Provider, string, error) {
	providerName := cmd.Flag("provider").Value.String()
	provider, err := dnsproviders.Get(providerName, auth.DefaultStore())
	if err != nil {
		return nil, "", err
	}
	return provider, providerName, nil
}

// validateDomains checks every requested domain name up front so a typo
// fails before any ACME traffic.
func validateDomains(domains []string) error {
	if len(domains) == 0 {
		return fmt.Errorf("at least one domain is required")
	}
	for _, d := range domains {
		if err := util.ValidateDomainName(d); err != nil {
			return err
		}
	}
	return nil
}
