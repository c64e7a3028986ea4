package config

import (
	"nathanbeddoewebdev/dynucert/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dynucert configuration",
		Long: "View and modify persistent dynucert settings.\n\n" +
			"Configuration is stored at ~/.config/dynucert/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
