package dns

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// DomainsCommand returns the "dns domains" subcommand.
func DomainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List zones in the provider account",
		Long: `List all DNS zones registered in the provider account.

Example:
  dynucert dns domains --provider dynu`,
		Args: cobra.NoArgs,
		Run:  runDomains,
	}
}

func runDomains(cmd *cobra.Command, args []string) {
	svc, err := newDNSService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	domains, err := svc.ListDomains(context.Background())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing zones: %v\n", err)
		return
	}

	if len(domains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No zones found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tZONE\tSTATUS\tCREATED")
	fmt.Fprintln(w, "--\t----\t------\t-------")

	for _, d := range domains {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			d.ID,
			d.Name,
			d.Status,
			d.CreateDate,
		)
	}

	w.Flush()
}
