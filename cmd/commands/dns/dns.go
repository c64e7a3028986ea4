package dns

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/dynucert/internal/config"
	dnsproviders "nathanbeddoewebdev/dynucert/internal/dns/providers"
	"nathanbeddoewebdev/dynucert/internal/dns/services"
	"nathanbeddoewebdev/dynucert/internal/services/auth"
	"nathanbeddoewebdev/dynucert/internal/swrcache"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "dns",
		Short:             "Inspect and manage DNS records",
		Long:              `Create, list, update, and delete DNS records. List zones in your account.`,
		PersistentPreRunE: resolveDNSProvider,
	}

	cmd.AddCommand(DomainsCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

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

func newDNSService(cmd *cobra.Command) (*services.Service, error) {
	providerName := cmd.Flag("provider").Value.String()
	provider, err := dnsproviders.Get(providerName, auth.DefaultStore())
	if err != nil {
		return nil, err
	}

	if os.Getenv("DYNUCERT_DISABLE_DNS_CACHE") == "1" {
		return services.New(provider), nil
	}

	cache := swrcache.NewDefault()
	return services.New(provider, services.WithCache(cache)), nil
}
