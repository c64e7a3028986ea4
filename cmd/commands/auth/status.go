package auth

import (
	"errors"
	"fmt"

	dnsproviders "nathanbeddoewebdev/dynucert/internal/dns/providers"
	"nathanbeddoewebdev/dynucert/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for DNS providers",
		Long: `Show which DNS providers have stored API keys.

Example:
  dynucert auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()
			providerNames := dnsproviders.List()

			if len(providerNames) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No providers registered.")
				return nil
			}

			for _, provider := range providerNames {
				_, err := store.GetToken(provider)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in\n", provider)
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", provider)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", provider, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
