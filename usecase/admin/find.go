package admin

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain/model"
)

// FindInput holds input parameters for locating an admin across
// organizations.
type FindInput struct {
	OrgFilter string `json:"org_filter"`
	Email     string `json:"email"`
}

// FindOutput holds per-organization results plus the aggregate match
// summary printed after scanning all organizations.
type FindOutput struct {
	Results     []*OrgResult `json:"results"`
	MatchCount  int          `json:"match_count"`
	MatchedOrgs []string     `json:"matched_orgs"`
}

// Find scans every filtered organization for the email and accumulates the
// organizations where it is an admin.
func (u *UseCase) Find(ctx context.Context, in *FindInput) (*FindOutput, error) {
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

	out := &FindOutput{}
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
		out.Results = append(out.Results, ok(org, "%s has %s access (id %s)", match.Email, match.OrgAccess, match.ID))
		out.MatchCount++
		out.MatchedOrgs = append(out.MatchedOrgs, org.Name)
	}
	return out, nil
}
