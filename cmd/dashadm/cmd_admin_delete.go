package main

import (
	"github.com/spf13/cobra"

	adminuc "github.com/orgtools/dashadm/usecase/admin"
)

// newCmdAdminDelete removes an admin from every filtered organization.
func newCmdAdminDelete() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:           "delete",
		Short:         "Delete an admin from the filtered organizations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := buildAdminUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Delete(cmd.Context(), &adminuc.DeleteInput{
				OrgFilter: orgFilter(cmd),
				Email:     email,
			})
			if err != nil {
				return err
			}
			writeResults(cmd.OutOrStdout(), out.Results)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
