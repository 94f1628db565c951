package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

func newGroupCmd() *cobra.Command {
	group := &cobra.Command{
		Use:   "group",
		Short: "Manage contact group membership",
	}
	group.AddCommand(newGroupAddCmd())
	group.AddCommand(newGroupRemoveCmd())
	return group
}

func newGroupAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add GROUP PERSON_RESOURCE",
		Short: "Add a contact to a group, creating the group on first use",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := buildClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			person, err := client.GetPerson(cmd.Context(), args[1], domain.MustFieldMask(domain.FieldNames))
			if err != nil {
				return err
			}
			if err := client.AddMemberToGroup(cmd.Context(), args[0], person); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to group %q\n", person.LoggingName(), args[0])
			return nil
		},
	}
}

func newGroupRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove GROUP PERSON_RESOURCE",
		Short: "Remove a contact from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := buildClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			person, err := client.GetPerson(cmd.Context(), args[1], domain.MustFieldMask(domain.FieldNames))
			if err != nil {
				return err
			}
			if err := client.RemoveMemberFromGroup(cmd.Context(), args[0], person); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s from group %q\n", person.LoggingName(), args[0])
			return nil
		},
	}
}
