package admin

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain/model"
)

// UpdateInput holds input parameters for changing an admin's access level
// across organizations.
type UpdateInput struct {
	OrgFilter string `json:"org_filter"`
	Email     string `json:"email"`
	OrgAccess string `json:"org_access"`
}

// UpdateOutput holds the per-organization results of an update.
type UpdateOutput struct {
	Results []*OrgResult `json:"results"`
}

// Update sets the access level of the admin matching the email in every
// filtered organization where it exists. The access level is validated
// before any network call.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("admin email is required")
	}
	access, err := model.ParseOrgAccess(in.OrgAccess)
	if err != nil {
		return nil, err
	}

	orgs, err := u.filteredOrganizations(ctx, in.OrgFilter)
	if err != nil {
		return nil, err
	}

	out := &UpdateOutput{}
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
		match.OrgAccess = access
		updated, err := u.Repos.Admin.Update(ctx, org.ID, match)
		if err != nil {
			out.Results = append(out.Results, failed(org, err))
			continue
		}
		out.Results = append(out.Results, ok(org, "updated %s to %s access", updated.Email, updated.OrgAccess))
	}
	return out, nil
}
