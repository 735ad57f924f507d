package main

import (
	"github.com/spf13/cobra"

	adminuc "github.com/orgtools/dashadm/usecase/admin"
)

// newCmdAdminList lists admins per filtered organization.
func newCmdAdminList() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List admins of the filtered organizations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	output := addOutputFlag(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		u, err := buildAdminUseCase(cmd)
		if err != nil {
			return err
		}
		out, err := u.List(cmd.Context(), &adminuc.ListInput{OrgFilter: orgFilter(cmd)})
		if err != nil {
			return err
		}
		if *output == "json" {
			return writeJSON(cmd.OutOrStdout(), out.Items)
		}
		return writeAdminTables(cmd.OutOrStdout(), out.Items)
	}
	return cmd
}
