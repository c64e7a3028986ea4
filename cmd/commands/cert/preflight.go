package cert

import (
	"fmt"

	"nathanbeddoewebdev/dynucert/internal/acme/challenge"

	"github.com/spf13/cobra"
)

// PreflightCommand returns the "cert preflight" subcommand.
func PreflightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preflight <domain> [domain...]",
		Short: "Check that domains can be managed before issuance",
		Long: `Check that each domain maps to a zone in the DNS provider account.
Run this before obtaining a certificate to catch missing zones or
credential problems without touching the ACME server.

Example:
  dynucert cert preflight my.example.com "*.example.com"`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runPreflight,
		SilenceUsage: true,
	}
}

func runPreflight(cmd *cobra.Command, args []string) error {
	domains := args
	if err := validateDomains(domains); err != nil {
		return err
	}

	provider, _, err := newProvider(cmd)
	if err != nil {
		return err
	}

	solver := challenge.NewSolver(provider)
	if err := solver.Preflight(cmd.Context(), domains); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "All %d domain(s) map to manageable zones.\n", len(domains))
	return nil
}
