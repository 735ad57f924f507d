package admin

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain"
	"github.com/orgtools/dashadm/domain/model"
)

// Repos holds repositories required for admin operations.
type Repos struct {
	Organization domain.OrganizationRepository
	Admin        domain.AdminRepository
}

// UseCase wires dependencies for admin operations.
type UseCase struct {
	Repos *Repos
}

// Outcome classifies what happened in one organization.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// OrgResult records the per-organization result of an operation.
type OrgResult struct {
	OrgID   string  `json:"orgId"`
	OrgName string  `json:"orgName"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// filteredOrganizations fetches the organization list and applies the name
// filter. A failure here aborts the whole command.
func (u *UseCase) filteredOrganizations(ctx context.Context, filter string) ([]*model.Organization, error) {
	orgs, err := u.Repos.Organization.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.FilterOrganizations(orgs, filter), nil
}

func failed(org *model.Organization, err error) *OrgResult {
	return &OrgResult{OrgID: org.ID, OrgName: org.Name, Outcome: OutcomeFailed, Message: err.Error()}
}

func skipped(org *model.Organization, format string, args ...any) *OrgResult {
	return &OrgResult{OrgID: org.ID, OrgName: org.Name, Outcome: OutcomeSkipped, Message: fmt.Sprintf(format, args...)}
}

func ok(org *model.Organization, format string, args ...any) *OrgResult {
	return &OrgResult{OrgID: org.ID, OrgName: org.Name, Outcome: OutcomeOK, Message: fmt.Sprintf(format, args...)}
}
