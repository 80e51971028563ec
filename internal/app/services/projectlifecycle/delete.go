// internal/app/services/projectlifecycle/delete.go
package projectlifecycle

import (
	"context"
	"errors"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/policy/projectpolicy"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Delete removes a project: its stored documents first, then the
// record, then the membership slots. If any document fails to delete
// the record survives, so nothing dangles without its project.
func (s *Service) Delete(ctx context.Context, caller Caller, projectID primitive.ObjectID) error {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperror.NotFound("project not found")
		}
		return err
	}

	if !projectpolicy.CanDelete(&p, caller.ID) {
		return apperror.Forbidden("only the project leader can delete the project")
	}

	for _, url := range p.DocumentURLs() {
		if err := s.media.Delete(ctx, url); err != nil {
			return apperror.Collaborator(err, "failed to delete project documents")
		}
	}

	if _, err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}

	released, err := s.memberships.ReleaseProject(ctx, projectID)
	if err != nil {
		// The project is gone; the slots must not stay claimed. Log
		// loudly so an operator can release them by hand.
		s.log.Error("failed to release memberships after project delete",
			zap.Stringer("project_id", projectID), zap.Error(err))
		return err
	}

	s.log.Info("project deleted",
		zap.Stringer("project_id", projectID),
		zap.Stringer("leader_id", caller.ID),
		zap.Int64("memberships_released", released))
	return nil
}
