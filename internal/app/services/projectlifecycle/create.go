// internal/app/services/projectlifecycle/create.go
package projectlifecycle

import (
	"context"
	"errors"
	"strings"

	membershipstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/memberships"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/htmlsanitize"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/inputval"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/ordset"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateInput carries the fields for a new project.
type CreateInput struct {
	Title       string
	Description models.ProjectDescription
}

// Create starts a new project with the caller as leader and sole team
// member. A user who already leads or belongs to a project is rejected:
// the membership claim (unique index on user_id) is taken before the
// project record is written, so two racing creates for the same user
// cannot both succeed.
func (s *Service) Create(ctx context.Context, caller Caller, in CreateInput) (ProjectView, error) {
	if err := validateCreate(in); err != nil {
		return ProjectView{}, err
	}

	p := models.Project{
		Title: strings.TrimSpace(in.Title),
		Description: models.ProjectDescription{
			Abstract:            htmlsanitize.Sanitize(in.Description.Abstract),
			ProblemStatement:    htmlsanitize.Sanitize(in.Description.ProblemStatement),
			ProposedMethodology: htmlsanitize.Sanitize(in.Description.ProposedMethodology),
			TechStack:           ordset.Fold(in.Description.TechStack),
		},
		CreatedBy:   caller.ID,
		TeamMembers: []primitive.ObjectID{caller.ID},
		Status:      models.ProjectStatusPending,
	}

	// Claim the leader's membership slot first. The project id is not
	// known yet, so claim under a placeholder and fix it after insert.
	projectID := primitive.NewObjectID()
	if err := s.memberships.Claim(ctx, caller.ID, projectID, models.MembershipLeader); err != nil {
		if errors.Is(err, membershipstore.ErrAlreadyInProject) {
			return ProjectView{}, apperror.Conflict("You are already part of a project")
		}
		return ProjectView{}, err
	}

	p.ID = projectID
	created, err := s.projects.Create(ctx, p)
	if err != nil {
		// Roll the claim back so the user is not locked out of
		// creating a project by a failed insert.
		if relErr := s.memberships.Release(ctx, caller.ID); relErr != nil {
			s.log.Error("failed to release membership after create failure",
				zap.Stringer("user_id", caller.ID), zap.Error(relErr))
		}
		return ProjectView{}, err
	}

	s.log.Info("project created",
		zap.Stringer("project_id", created.ID),
		zap.Stringer("leader_id", caller.ID))

	return s.resolveView(ctx, created)
}

func validateCreate(in CreateInput) error {
	if !inputval.NonEmpty(in.Title) {
		return apperror.Validation("title is required")
	}
	if !inputval.NonEmpty(in.Description.Abstract) ||
		!inputval.NonEmpty(in.Description.ProblemStatement) ||
		!inputval.NonEmpty(in.Description.ProposedMethodology) {
		return apperror.Validation("abstract, problem statement, and proposed methodology are required")
	}
	return nil
}
