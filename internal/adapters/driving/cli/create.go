package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a contact with the given display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := buildClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			person, err := client.CreatePerson(cmd.Context(), args[0], domain.MustFieldMask(domain.FieldNames))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", person.LoggingName(), person.ResourceName())
			return nil
		},
	}
}
