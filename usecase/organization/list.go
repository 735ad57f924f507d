package organization

import (
	"context"
	"fmt"

	"github.com/orgtools/dashadm/domain/model"
)

// ListInput holds input parameters for listing organizations.
type ListInput struct {
	Filter string `json:"filter"`
}

// ListOutput holds the filtered organization list.
type ListOutput struct {
	Items []*model.Organization `json:"items"`
}

// List returns the organizations matching the name filter, in API order.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is required")
	}
	orgs, err := u.Repos.Organization.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return &ListOutput{Items: model.FilterOrganizations(orgs, in.Filter)}, nil
}
