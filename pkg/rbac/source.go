package rbac

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// RoleSource defines the interface for providing role data.
type RoleSource interface {
	// Load returns a map of all roles.
	Load(ctx context.Context) (map[string]Role, error)
}

// inMemRoleSource is a simple RoleSource that loads roles from memory.
// It makes defensive copies to prevent external modifications.
type inMemRoleSource struct {
	mu    sync.RWMutex
	roles map[string]Role
}

// NewInMemRoleSource creates a new in-memory role source from a map of
// roles. It creates a deep copy of the input to prevent external
// modifications.
func NewInMemRoleSource(roles map[string]Role) RoleSource {
	rolesCopy := make(map[string]Role, len(roles))
	for name, role := range roles {
		rolesCopy[name] = role.clone()
	}

	return &inMemRoleSource{roles: rolesCopy}
}

// Load returns the map of roles.
// The returned map is safe to read but should not be modified.
func (s *inMemRoleSource) Load(ctx context.Context) (map[string]Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roles, nil
}

// yamlFileSource loads the role table from a YAML file of the form:
//
//	admin:
//	  permissions: ["users:*", "settings:*"]
//	  inherits: ["manager"]
//	manager:
//	  permissions: ["team:*"]
type yamlFileSource struct {
	path string
}

// NewYAMLFileSource creates a RoleSource that reads a role table from the
// YAML file at path. The file is read on every Load so callers decide when
// to pick up changes by rebuilding the registry.
func NewYAMLFileSource(path string) RoleSource {
	return &yamlFileSource{path: path}
}

func (s *yamlFileSource) Load(ctx context.Context) (map[string]Role, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("rbac: read role file %s: %w", s.path, err)
	}
	return ParseYAMLRoles(data)
}

// ParseYAMLRoles decodes a YAML role table.
func ParseYAMLRoles(data []byte) (map[string]Role, error) {
	roles := make(map[string]Role)
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("rbac: parse role table: %w", err)
	}
	return roles, nil
}
