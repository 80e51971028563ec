// internal/app/policy/projectpolicy/projectpolicy.go
//
// Package projectpolicy holds the ownership and role checks the
// lifecycle service runs before each mutation. The checks are pure
// functions over an already-loaded project so they can sit inside the
// same consistent read the mutation uses.
package projectpolicy

import (
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanRecruit reports whether the user may add team members: leaders only.
func CanRecruit(p *models.Project, userID primitive.ObjectID) bool {
	return p.IsLeader(userID)
}

// CanRequestMentor reports whether the user may request a mentor:
// leaders only.
func CanRequestMentor(p *models.Project, userID primitive.ObjectID) bool {
	return p.IsLeader(userID)
}

// CanDelete reports whether the user may delete the project: leaders only.
func CanDelete(p *models.Project, userID primitive.ObjectID) bool {
	return p.IsLeader(userID)
}

// CanDecide reports whether the user may accept or reject a mentor
// request on the project: only a mentor with a pending request.
func CanDecide(p *models.Project, role string, mentorID primitive.ObjectID) bool {
	return role == models.RoleMentor && p.HasMentorRequest(mentorID)
}

// CanList reports whether the role may list all projects. Students see
// only their own project via the visibility query, never the full list.
func CanList(role string) bool {
	return role != models.RoleStudent
}

// CanView reports whether the project is visible to the caller:
// students see projects they lead or belong to, mentors the projects
// assigned to them (plus ones requesting them), and every other role
// sees everything.
func CanView(p *models.Project, role string, userID primitive.ObjectID) bool {
	switch role {
	case models.RoleStudent:
		return p.HasMember(userID) || p.IsLeader(userID)
	case models.RoleMentor:
		if p.AssignedMentor != nil && *p.AssignedMentor == userID {
			return true
		}
		return p.HasMentorRequest(userID)
	default:
		return true
	}
}
