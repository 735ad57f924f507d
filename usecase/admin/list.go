package admin

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain/model"
	"github.com/orgtools/dashadm/internal/logging"
)

// ListInput holds input parameters for listing admins across organizations.
type ListInput struct {
	OrgFilter string `json:"org_filter"`
}

// OrgAdmins is one organization's admin roster.
type OrgAdmins struct {
	OrgID   string         `json:"orgId"`
	OrgName string         `json:"orgName"`
	Admins  []*model.Admin `json:"admins"`
}

// ListOutput holds the rosters of all filtered organizations whose admin
// list could be retrieved.
type ListOutput struct {
	Items []*OrgAdmins `json:"items"`
}

// List fetches the admin roster of every filtered organization.
// Organizations whose roster cannot be retrieved are logged and omitted from
// the output.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is required")
	}

	orgs, err := u.filteredOrganizations(ctx, in.OrgFilter)
	if err != nil {
		return nil, err
	}

	out := &ListOutput{}
	for _, org := range orgs {
		admins, err := u.Repos.Admin.List(ctx, org.ID)
		if err != nil {
			logging.FromContext(ctx).Warn(ctx, "skipping organization", "org", org.Name, "error", err)
			continue
		}
		out.Items = append(out.Items, &OrgAdmins{OrgID: org.ID, OrgName: org.Name, Admins: admins})
	}
	return out, nil
}
