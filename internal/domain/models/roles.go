// internal/domain/models/roles.go
package models

// User roles. Role is assigned at registration and never changes.
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// Project statuses. Transitions are manual (admin tooling); no operation
// moves a project between statuses automatically.
const (
	ProjectStatusPending  = "pending"
	ProjectStatusApproved = "approved"
	ProjectStatusRejected = "rejected"
)

// Membership roles within a project.
const (
	MembershipLeader = "leader"
	MembershipMember = "member"
)

// IsValidRole checks if a value is a recognized user role.
func IsValidRole(value string) bool {
	switch value {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// IsValidProjectStatus checks if a value is a recognized project status.
func IsValidProjectStatus(value string) bool {
	switch value {
	case ProjectStatusPending, ProjectStatusApproved, ProjectStatusRejected:
		return true
	}
	return false
}
