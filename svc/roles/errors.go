package roles

import "errors"

var (
	// ErrRoleNotFound is returned when the requested role does not exist.
	ErrRoleNotFound = errors.New("roles: role not found")

	// ErrSlugExists is returned when creating a role whose slug is
	// already taken in the tenant.
	ErrSlugExists = errors.New("roles: slug already exists")

	// ErrAlreadyAssigned is returned when assigning a role the user
	// already holds.
	ErrAlreadyAssigned = errors.New("roles: role already assigned")

	// ErrSystemRole is returned when modifying or deleting a system
	// role.
	ErrSystemRole = errors.New("roles: cannot modify system role")
)
