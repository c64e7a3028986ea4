package cmd

import (
	"os"

	"nathanbeddoewebdev/dynucert/cmd/commands/audit"
	"nathanbeddoewebdev/dynucert/cmd/commands/auth"
	"nathanbeddoewebdev/dynucert/cmd/commands/cert"
	cfgcmd "nathanbeddoewebdev/dynucert/cmd/commands/config"
	"nathanbeddoewebdev/dynucert/cmd/commands/dns"
	dnsproviders "nathanbeddoewebdev/dynucert/internal/dns/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "dynucert",
		Short: "Obtain TLS certificates with DNS-01 challenges via your DNS provider",
		Long: `dynucert obtains TLS certificates from Let's Encrypt by answering DNS-01
challenges through your DNS provider's API. It provisions the required
_acme-challenge TXT records, waits for propagation, and cleans up after
itself.

Supported providers: Dynu (more coming soon).

Quick start:
  dynucert auth login dynu                  # Store your API key
  dynucert config set acme-email you@example.com
  dynucert cert preflight my.example.com    # Check the zone is manageable
  dynucert cert obtain my.example.com       # Issue the certificate`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(cert.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	dnsproviders.RegisterDynu()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
