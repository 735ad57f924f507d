package domain

import (
	"context"

	"github.com/orgtools/dashadm/domain/model"
)

// OrganizationRepository retrieves Organization aggregates from the dashboard.
// Organizations are read-only to this system.
type OrganizationRepository interface {
	List(ctx context.Context) ([]*model.Organization, error)
}

// AdminRepository stores and retrieves Admin aggregates scoped to one
// organization.
type AdminRepository interface {
	List(ctx context.Context, orgID string) ([]*model.Admin, error)
	Create(ctx context.Context, orgID string, a *model.Admin) (*model.Admin, error)
	Update(ctx context.Context, orgID string, a *model.Admin) (*model.Admin, error)
	Delete(ctx context.Context, orgID string, adminID string) error
}

// Repositories groups the repository interfaces a usecase needs.
type Repositories struct {
	Organization OrganizationRepository
	Admin        AdminRepository
}
