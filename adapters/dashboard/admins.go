package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/orgtools/dashadm/adapters/dashboard/api"
	"github.com/orgtools/dashadm/domain/model"
)

// AdminRepo stores and retrieves organization administrators via the
// dashboard API.
type AdminRepo struct {
	exec *api.Executor
}

// NewAdminRepo returns an AdminRepo over exec.
func NewAdminRepo(exec *api.Executor) *AdminRepo {
	return &AdminRepo{exec: exec}
}

// adminRequest is the request body shape for create and update calls.
type adminRequest struct {
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
	OrgAccess model.OrgAccess `json:"orgAccess,omitempty"`
}

func adminsPath(orgID string) string {
	return "/organizations/" + url.PathEscape(orgID) + "/admins"
}

func adminPath(orgID, adminID string) string {
	return adminsPath(orgID) + "/" + url.PathEscape(adminID)
}

// List returns the organization's administrators in API order.
func (r *AdminRepo) List(ctx context.Context, orgID string) ([]*model.Admin, error) {
	payload, err := r.exec.Do(ctx, http.MethodGet, adminsPath(orgID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins for organization %s: %w", orgID, err)
	}
	var admins []*model.Admin
	if err := json.Unmarshal(payload, &admins); err != nil {
		return nil, fmt.Errorf("failed to decode admin list for organization %s: %w", orgID, err)
	}
	return admins, nil
}

// Create adds a new administrator to the organization and returns the created
// record with its API-assigned id.
func (r *AdminRepo) Create(ctx context.Context, orgID string, a *model.Admin) (*model.Admin, error) {
	body := adminRequest{Name: a.Name, Email: a.Email, OrgAccess: a.OrgAccess}
	payload, err := r.exec.Do(ctx, http.MethodPost, adminsPath(orgID), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin %s in organization %s: %w", a.Email, orgID, err)
	}
	created := &model.Admin{}
	if err := json.Unmarshal(payload, created); err != nil {
		return nil, fmt.Errorf("failed to decode created admin: %w", err)
	}
	return created, nil
}

// Update modifies an existing administrator identified by a.ID.
func (r *AdminRepo) Update(ctx context.Context, orgID string, a *model.Admin) (*model.Admin, error) {
	if a.ID == "" {
		return nil, fmt.Errorf("admin id is required for update")
	}
	body := adminRequest{Name: a.Name, OrgAccess: a.OrgAccess}
	payload, err := r.exec.Do(ctx, http.MethodPut, adminPath(orgID, a.ID), body)
	if err != nil {
		return nil, fmt.Errorf("failed to update admin %s in organization %s: %w", a.Email, orgID, err)
	}
	updated := &model.Admin{}
	if err := json.Unmarshal(payload, updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated admin: %w", err)
	}
	return updated, nil
}

// Delete removes an administrator by its API-assigned id.
func (r *AdminRepo) Delete(ctx context.Context, orgID, adminID string) error {
	if _, err := r.exec.Do(ctx, http.MethodDelete, adminPath(orgID, adminID), nil); err != nil {
		return fmt.Errorf("failed to delete admin %s from organization %s: %w", adminID, orgID, err)
	}
	return nil
}
