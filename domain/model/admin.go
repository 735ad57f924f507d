package model

import "fmt"

// OrgAccess is the access level granted to an administrator within one
// organization.
type OrgAccess string

const (
	OrgAccessFull     OrgAccess = "full"
	OrgAccessReadOnly OrgAccess = "read-only"
)

// ParseOrgAccess validates an access level supplied on the command line.
func ParseOrgAccess(s string) (OrgAccess, error) {
	switch OrgAccess(s) {
	case OrgAccessFull, OrgAccessReadOnly:
		return OrgAccess(s), nil
	default:
		return "", fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidOrgAccess, s, OrgAccessFull, OrgAccessReadOnly)
	}
}

// Admin represents an administrator account scoped to one organization.
// Email is the business key used for matching across commands; ID is the
// opaque handle the API assigns and accepts back.
type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	OrgAccess OrgAccess `json:"orgAccess"`
}

// FindAdminByEmail returns the first admin whose email equals email exactly,
// in the order the API returned the list, or nil when absent.
func FindAdminByEmail(admins []*Admin, email string) *Admin {
	for _, a := range admins {
		if a.Email == email {
			return a
		}
	}
	return nil
}
