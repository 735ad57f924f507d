package model

import "strings"

// FilterAll is the organization filter literal that matches every organization.
const FilterAll = "/all"

// Organization represents a dashboard tenant. The platform assigns the ID;
// this system never creates or mutates organizations.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FilterOrganizations returns the organizations whose name contains filter as
// a case-sensitive substring. The literal FilterAll returns the input slice
// unchanged, preserving order.
func FilterOrganizations(orgs []*Organization, filter string) []*Organization {
	if filter == FilterAll {
		return orgs
	}
	var out []*Organization
	for _, o := range orgs {
		if strings.Contains(o.Name, filter) {
			out = append(out, o)
		}
	}
	return out
}
