// internal/app/services/projectlifecycle/list.go
package projectlifecycle

import (
	"context"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/policy/projectpolicy"
	projectstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/projects"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/paging"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListInput carries the list filters as the caller sent them; List
// clamps page/limit itself.
type ListInput struct {
	Page   int
	Limit  int
	Status string
	Mentor string // hex ObjectID; silently ignored when malformed
	Search string
}

// ListResult is one page of projects plus the counts the caller needs
// to render pagination.
type ListResult struct {
	Projects   []ProjectView `json:"projects"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

// List returns a filtered page of all projects. Students cannot list;
// they see their own project through Visible instead.
func (s *Service) List(ctx context.Context, caller Caller, in ListInput) (ListResult, error) {
	if !projectpolicy.CanList(caller.Role) {
		return ListResult{}, apperror.Forbidden("students cannot list all projects")
	}

	page, limit := paging.Clamp(in.Page, in.Limit)

	f := projectstore.ListFilter{
		Status: in.Status,
		Search: in.Search,
		Page:   page,
		Limit:  limit,
	}
	// The mentor filter applies only when it parses as an ObjectID;
	// garbage input means "no mentor filter", not an error.
	if in.Mentor != "" {
		if id, err := primitive.ObjectIDFromHex(in.Mentor); err == nil {
			f.Mentor = &id
		}
	}

	projects, total, err := s.projects.List(ctx, f)
	if err != nil {
		return ListResult{}, err
	}
	views, err := s.resolveViews(ctx, projects)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Projects:   views,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: paging.TotalPages(total, limit),
	}, nil
}

// Visible returns the projects the caller may see, by role: students
// get projects they lead or belong to, mentors the projects assigned
// to them, and any other role the full unfiltered set. An empty result
// is NotFound.
func (s *Service) Visible(ctx context.Context, caller Caller) ([]ProjectView, error) {
	var (
		projects []models.Project
		err      error
	)
	switch caller.Role {
	case models.RoleStudent:
		projects, err = s.projects.ListForStudent(ctx, caller.ID)
	case models.RoleMentor:
		projects, err = s.projects.ListForMentor(ctx, caller.ID)
	default:
		projects, err = s.projects.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, apperror.NotFound("no projects found")
	}
	return s.resolveViews(ctx, projects)
}

// Get returns one project by id, subject to the same role-based
// visibility rule. Projects hidden from the caller read as NotFound
// rather than Forbidden so their existence is not leaked.
func (s *Service) Get(ctx context.Context, caller Caller, projectID primitive.ObjectID) (ProjectView, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return ProjectView{}, apperror.NotFound("project not found")
	}
	if !projectpolicy.CanView(&p, caller.Role, caller.ID) {
		return ProjectView{}, apperror.NotFound("project not found")
	}
	return s.resolveView(ctx, p)
}
