package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	adminuc "github.com/orgtools/dashadm/usecase/admin"
)

// newCmdAdminFind reports the filtered organizations where the email is an
// admin.
func newCmdAdminFind() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:           "find",
		Short:         "Find the organizations where an email is an admin",
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
		out, err := u.Find(cmd.Context(), &adminuc.FindInput{
			OrgFilter: orgFilter(cmd),
			Email:     email,
		})
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if *output == "json" {
			return writeJSON(w, out)
		}
		writeResults(w, out.Results)
		fmt.Fprintf(w, "%s is an admin in %d organization(s)", email, out.MatchCount)
		if out.MatchCount > 0 {
			fmt.Fprintf(w, ": %s", strings.Join(out.MatchedOrgs, ", "))
		}
		fmt.Fprintln(w)
		return nil
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
