// internal/app/services/projectlifecycle/views.go
package projectlifecycle

import (
	"context"
	"time"

	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRef is the resolved display form of a user reference.
type UserRef struct {
	ID       primitive.ObjectID `json:"id"`
	FullName string             `json:"full_name"`
	Email    string             `json:"email"`
	Role     string             `json:"role"`
	RollNo   string             `json:"roll_no,omitempty"`
}

// ProjectView is a project with its user references resolved for
// display: leader, team, assigned mentor, and pending requests.
type ProjectView struct {
	ID             primitive.ObjectID        `json:"id"`
	Title          string                    `json:"title"`
	Description    models.ProjectDescription `json:"description"`
	Status         string                    `json:"status"`
	Leader         UserRef                   `json:"leader"`
	TeamMembers    []UserRef                 `json:"team_members"`
	AssignedMentor *UserRef                  `json:"assigned_mentor,omitempty"`
	MentorRequests []UserRef                 `json:"mentor_requests,omitempty"`
	Documents      []models.ProjectDocument  `json:"documents,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func userRef(u models.User) UserRef {
	return UserRef{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		RollNo:   u.RollNo,
	}
}

// resolveView loads every user the project references and assembles the
// display form. Unresolvable references (deleted accounts) degrade to a
// bare id rather than failing the whole read.
func (s *Service) resolveView(ctx context.Context, p models.Project) (ProjectView, error) {
	ids := make([]primitive.ObjectID, 0, len(p.TeamMembers)+len(p.MentorRequests)+2)
	ids = append(ids, p.CreatedBy)
	ids = append(ids, p.TeamMembers...)
	ids = append(ids, p.MentorRequests...)
	if p.AssignedMentor != nil {
		ids = append(ids, *p.AssignedMentor)
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return ProjectView{}, err
	}
	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ref := func(id primitive.ObjectID) UserRef {
		if u, ok := byID[id]; ok {
			return userRef(u)
		}
		return UserRef{ID: id}
	}

	view := ProjectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Leader:      ref(p.CreatedBy),
		Documents:   p.Documents,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, id := range p.TeamMembers {
		view.TeamMembers = append(view.TeamMembers, ref(id))
	}
	for _, id := range p.MentorRequests {
		view.MentorRequests = append(view.MentorRequests, ref(id))
	}
	if p.AssignedMentor != nil {
		m := ref(*p.AssignedMentor)
		view.AssignedMentor = &m
	}
	return view, nil
}

func (s *Service) resolveViews(ctx context.Context, projects []models.Project) ([]ProjectView, error) {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		v, err := s.resolveView(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
