package dns

import (
	"context"
	"fmt"

	dnsdomain "nathanbeddoewebdev/dynucert/internal/dns/domain"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "dns update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <zone> <id>",
		Short: "Update a DNS record",
		Long: `Update an existing DNS record by its ID.

Examples:
  dynucert dns update example.com 9137521 --type A --content 5.6.7.8
  dynucert dns update example.com 9137521 --type A --content 5.6.7.8 --ttl 3600`,
		Args: cobra.ExactArgs(2),
		Run:  runUpdate,
	}

	cmd.Flags().String("type", "", "Record type [required]")
	cmd.Flags().String("name", "", "New node name")
	cmd.Flags().String("content", "", "New record content [required]")
	cmd.Flags().Int("ttl", 0, "New time-to-live in seconds (default: 300)")
	cmd.Flags().Int("priority", 0, "New record priority")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("content")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) {
	domainName := args[0]
	recordID := args[1]
	recordType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	content, _ := cmd.Flags().GetString("content")
	ttl, _ := cmd.Flags().GetInt("ttl")
	priority, _ := cmd.Flags().GetInt("priority")

	svc, err := newDNSService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	err = svc.UpdateRecord(context.Background(), domainName, recordID, dnsdomain.UpdateRecordOpts{
		Name:     name,
		Type:     dnsdomain.RecordType(recordType),
		Content:  content,
		TTL:      ttl,
		Priority: priority,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error updating record: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %s\n", recordID)
}
