package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/orgtools/dashadm/domain/model"
	adminuc "github.com/orgtools/dashadm/usecase/admin"
)

// addOutputFlag registers the -o/--output flag on list-like commands.
func addOutputFlag(fs *pflag.FlagSet) *string {
	return fs.StringP("output", "o", "table", "Output format (table|json)")
}

// writeJSON writes v as indented JSON, matching the table alternative.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeAdminTables writes one table block per organization roster, headed by
// the organization name, one row per admin.
func writeAdminTables(w io.Writer, items []*adminuc.OrgAdmins) error {
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", item.OrgName, item.OrgID)
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tEMAIL\tACCESS")
		for _, a := range item.Admins {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Email, a.OrgAccess)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// writeOrgTable writes the organization list as a single table.
func writeOrgTable(w io.Writer, orgs []*model.Organization) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, o := range orgs {
		fmt.Fprintf(tw, "%s\t%s\n", o.ID, o.Name)
	}
	return tw.Flush()
}

// writeResults prints one outcome line per organization.
func writeResults(w io.Writer, results []*adminuc.OrgResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: %s\n", r.OrgName, r.Message)
	}
}
