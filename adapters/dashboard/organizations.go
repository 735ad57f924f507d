// Package dashboard implements the domain repositories over the dashboard
// REST API.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orgtools/dashadm/adapters/dashboard/api"
	"github.com/orgtools/dashadm/domain/model"
)

// OrganizationRepo retrieves organizations from the dashboard API.
type OrganizationRepo struct {
	exec *api.Executor
}

// NewOrganizationRepo returns an OrganizationRepo over exec.
func NewOrganizationRepo(exec *api.Executor) *OrganizationRepo {
	return &OrganizationRepo{exec: exec}
}

// List returns all organizations the API key can access, in API order.
func (r *OrganizationRepo) List(ctx context.Context) ([]*model.Organization, error) {
	payload, err := r.exec.Do(ctx, http.MethodGet, "/organizations", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	var orgs []*model.Organization
	if err := json.Unmarshal(payload, &orgs); err != nil {
		return nil, fmt.Errorf("failed to decode organization list: %w", err)
	}
	return orgs, nil
}
