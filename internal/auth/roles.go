package auth

import "fmt"

// Role is the department-level role assigned to a staff member. Roles are
// immutable through the approval flows; only staff administration changes them.
type Role string

const (
	RoleEmployee       Role = "employee"
	RoleIntern         Role = "intern"
	RoleProjectManager Role = "project_manager"
	RoleSecretary      Role = "secretary"
	RoleDepartmentHead Role = "department_head"
)

var validRoles = map[Role]bool{
	RoleEmployee:       true,
	RoleIntern:         true,
	RoleProjectManager: true,
	RoleSecretary:      true,
	RoleDepartmentHead: true,
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !validRoles[r] {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	return validRoles[r]
}
