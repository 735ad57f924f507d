package main

import (
	"github.com/spf13/cobra"

	adminuc "github.com/orgtools/dashadm/usecase/admin"
)

// newCmdAdminAdd grants an admin to every filtered organization.
func newCmdAdminAdd() *cobra.Command {
	var (
		name   string
		email  string
		access string
	)
	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add an admin to the filtered organizations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := buildAdminUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Add(cmd.Context(), &adminuc.AddInput{
				OrgFilter: orgFilter(cmd),
				Name:      name,
				Email:     email,
				OrgAccess: access,
			})
			if err != nil {
				return err
			}
			writeResults(cmd.OutOrStdout(), out.Results)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Admin display name")
	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&access, "access", "full", "Access level (full|read-only)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
