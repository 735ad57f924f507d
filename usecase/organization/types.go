package organization

import (
	"github.com/orgtools/dashadm/domain"
)

// Repos holds repositories required for organization operations.
type Repos struct {
	Organization domain.OrganizationRepository
}

// UseCase wires dependencies for organization operations.
type UseCase struct {
	Repos *Repos
}
