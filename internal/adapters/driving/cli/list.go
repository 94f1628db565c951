package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

func newListCmd() *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts under a field mask",
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := domain.ParseFieldMask(fields)
			if err != nil {
				return err
			}
			if mask.Len() == 0 {
				mask = domain.MustFieldMask(domain.FieldNames)
			}

			client, cleanup, err := buildClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			persons, err := client.GetAllPersons(cmd.Context(), mask)
			var pagingErr *domain.PagingError
			if errors.As(err, &pagingErr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: listing incomplete (%v); showing %d contacts\n",
					pagingErr.Err, len(persons))
			} else if err != nil {
				return err
			}

			for _, p := range persons {
				line := []string{p.ResourceName()}
				if mask.Contains(domain.FieldNames) {
					line = append(line, p.LoggingName())
				}
				if mask.Contains(domain.FieldEmailAddresses) {
					emails, err := p.EmailAddresses()
					if err == nil {
						line = append(line, strings.Join(emails.Values(), " "))
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(line, "\t"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fields, "fields", "names",
		"comma-separated person fields to request (e.g. names,emailAddresses)")
	return cmd
}
