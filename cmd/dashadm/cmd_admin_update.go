package main

import (
	"github.com/spf13/cobra"

	adminuc "github.com/orgtools/dashadm/usecase/admin"
)

// newCmdAdminUpdate changes an admin's access level in every filtered
// organization.
func newCmdAdminUpdate() *cobra.Command {
	var (
		email  string
		access string
	)
	cmd := &cobra.Command{
		Use:           "update",
		Short:         "Update an admin's access level in the filtered organizations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := buildAdminUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Update(cmd.Context(), &adminuc.UpdateInput{
				OrgFilter: orgFilter(cmd),
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
	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&access, "access", "", "Access level (full|read-only)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("access")
	return cmd
}
