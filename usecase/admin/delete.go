package admin

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain/model"
)

// DeleteInput holds input parameters for removing an admin across
// organizations.
type DeleteInput struct {
	OrgFilter string `json:"org_filter"`
	Email     string `json:"email"`
}

// DeleteOutput holds the per-organization results of a delete.
type DeleteOutput struct {
	Results []*OrgResult `json:"results"`
}

// Delete removes the admin matching the email from every filtered
// organization where it exists. Absence is a skip, not an error.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("admin email is required")
	}

	orgs, err := u.filteredOrganizations(ctx, in.OrgFilter)
	if err != nil {
		return nil, err
	}

	out := &DeleteOutput{}
	for _, org := range orgs {
		admins, err := u.Repos.Admin.List(ctx, org.ID)
		if err != nil {
			out.Results = append(out.Results, failed(org, err))
			continue
		}
		match := model.FindAdminByEmail(admins, in.Email)
		if match == nil {
			out.Results = append(out.Results, skipped(org, "%s is not an admin", in.Email))
			continue
		}
		if err := u.Repos.Admin.Delete(ctx, org.ID, match.ID); err != nil {
			out.Results = append(out.Results, failed(org, err))
			continue
		}
		out.Results = append(out.Results, ok(org, "deleted %s (id %s)", match.Email, match.ID))
	}
	return out, nil
}
