package model

import "errors"

var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrInvalidOrgAccess = errors.New("invalid org access level")
)
