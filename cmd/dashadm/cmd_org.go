package main

import (
	"github.com/spf13/cobra"

	orguc "github.com/orgtools/dashadm/usecase/organization"
)

// newCmdOrg returns the parent command for organization operations.
func newCmdOrg() *cobra.Command {
	c := &cobra.Command{
		Use:   "org",
		Short: "Inspect organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(newCmdOrgList())
	return c
}

// newCmdOrgList lists the organizations matching the name filter.
func newCmdOrgList() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List organizations matching the filter",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	output := addOutputFlag(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		u, err := buildOrgUseCase(cmd)
		if err != nil {
			return err
		}
		out, err := u.List(cmd.Context(), &orguc.ListInput{Filter: orgFilter(cmd)})
		if err != nil {
			return err
		}
		if *output == "json" {
			return writeJSON(cmd.OutOrStdout(), out.Items)
		}
		return writeOrgTable(cmd.OutOrStdout(), out.Items)
	}
	return cmd
}
