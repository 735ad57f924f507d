package main

import "github.com/spf13/cobra"

// newCmdAdmin returns the parent command for admin operations.
func newCmdAdmin() *cobra.Command {
	c := &cobra.Command{
		Use:   "admin",
		Short: "Manage organization administrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(
		newCmdAdminList(),
		newCmdAdminAdd(),
		newCmdAdminDelete(),
		newCmdAdminUpdate(),
		newCmdAdminFind(),
	)
	return c
}
