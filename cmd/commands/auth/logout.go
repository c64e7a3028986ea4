package auth

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/dynucert/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <provider>",
		Short: "Remove the stored API key for a DNS provider",
		Long: `Remove the stored API key for a DNS provider from the local keychain.

Example:
  dynucert auth logout dynu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := strings.TrimSpace(args[0])
			if provider == "" {
				return fmt.Errorf("provider is required")
			}

			store := auth.DefaultStore()
			if err := store.DeleteToken(provider); err != nil {
				if errors.Is(err, auth.ErrTokenNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "No API key stored for provider %s\n", provider)
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed API key for provider %s\n", provider)
			return nil
		},
		SilenceUsage: true,
	}
}
