package projectpolicy

import (
	"testing"

	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLeaderOnlyChecks(t *testing.T) {
	leader := primitive.NewObjectID()
	member := primitive.NewObjectID()
	outsider := primitive.NewObjectID()

	p := &models.Project{
		CreatedBy:   leader,
		TeamMembers: []primitive.ObjectID{leader, member},
	}

	for name, check := range map[string]func(*models.Project, primitive.ObjectID) bool{
		"CanRecruit":       CanRecruit,
		"CanRequestMentor": CanRequestMentor,
		"CanDelete":        CanDelete,
	} {
		if !check(p, leader) {
			t.Errorf("%s(leader) = false", name)
		}
		if check(p, member) {
			t.Errorf("%s(member) = true, want leader-only", name)
		}
		if check(p, outsider) {
			t.Errorf("%s(outsider) = true", name)
		}
	}
}

func TestCanDecide(t *testing.T) {
	mentor := primitive.NewObjectID()
	other := primitive.NewObjectID()
	p := &models.Project{MentorRequests: []primitive.ObjectID{mentor}}

	if !CanDecide(p, models.RoleMentor, mentor) {
		t.Error("requested mentor should be allowed to decide")
	}
	if CanDecide(p, models.RoleMentor, other) {
		t.Error("unrequested mentor should not decide")
	}
	if CanDecide(p, models.RoleStudent, mentor) {
		t.Error("non-mentor role should not decide")
	}
}

func TestCanList(t *testing.T) {
	if CanList(models.RoleStudent) {
		t.Error("students must not list all projects")
	}
	if !CanList(models.RoleMentor) || !CanList(models.RoleAdmin) {
		t.Error("mentors and admins may list")
	}
}

func TestCanView(t *testing.T) {
	leader := primitive.NewObjectID()
	member := primitive.NewObjectID()
	mentor := primitive.NewObjectID()
	requested := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	p := &models.Project{
		CreatedBy:      leader,
		TeamMembers:    []primitive.ObjectID{leader, member},
		AssignedMentor: &mentor,
		MentorRequests: []primitive.ObjectID{requested},
	}

	if !CanView(p, models.RoleStudent, leader) || !CanView(p, models.RoleStudent, member) {
		t.Error("team members should see their project")
	}
	if CanView(p, models.RoleStudent, stranger) {
		t.Error("unrelated student should not see the project")
	}
	if !CanView(p, models.RoleMentor, mentor) {
		t.Error("assigned mentor should see the project")
	}
	if !CanView(p, models.RoleMentor, requested) {
		t.Error("requested mentor should see the project")
	}
	if CanView(p, models.RoleMentor, stranger) {
		t.Error("unrelated mentor should not see the project")
	}
	if !CanView(p, models.RoleAdmin, stranger) {
		t.Error("admin fallthrough should see everything")
	}
}
