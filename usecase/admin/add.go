package admin

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain/model"
)

// AddInput holds input parameters for adding an admin across organizations.
type AddInput struct {
	OrgFilter string `json:"org_filter"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	OrgAccess string `json:"org_access"`
}

// AddOutput holds the per-organization results of an add.
type AddOutput struct {
	Results []*OrgResult `json:"results"`
}

// Add grants the admin to every filtered organization where the email is not
// already present. The access level is validated before any network call.
func (u *UseCase) Add(ctx context.Context, in *AddInput) (*AddOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("admin email is required")
	}
	if in.Name == "" {
		return nil, fmt.Errorf("admin name is required")
	}
	access, err := model.ParseOrgAccess(in.OrgAccess)
	if err != nil {
		return nil, err
	}

	orgs, err := u.filteredOrganizations(ctx, in.OrgFilter)
	if err != nil {
		return nil, err
	}

	out := &AddOutput{}
	for _, org := range orgs {
		admins, err := u.Repos.Admin.List(ctx, org.ID)
		if err != nil {
			out.Results = append(out.Results, failed(org, err))
			continue
		}
		if model.FindAdminByEmail(admins, in.Email) != nil {
			out.Results = append(out.Results, skipped(org, "%s is already an admin", in.Email))
			continue
		}
		created, err := u.Repos.Admin.Create(ctx, org.ID, &model.Admin{
			Name:      in.Name,
			Email:     in.Email,
			OrgAccess: access,
		})
		if err != nil {
			out.Results = append(out.Results, failed(org, err))
			continue
		}
		out.Results = append(out.Results, ok(org, "added %s with %s access (id %s)", created.Email, created.OrgAccess, created.ID))
	}
	return out, nil
}
