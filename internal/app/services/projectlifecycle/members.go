// internal/app/services/projectlifecycle/members.go
package projectlifecycle

import (
	"context"
	"errors"
	"strings"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AddTeamMembers resolves a mixed batch of roll numbers and emails and
// unions the matched users into the caller's project. All-or-nothing:
// if any identifier fails to resolve, nothing is written.
func (s *Service) AddTeamMembers(ctx context.Context, caller Caller, identifiers []string) (ProjectView, error) {
	cleaned := make([]string, 0, len(identifiers))
	for _, ident := range identifiers {
		if ident = strings.TrimSpace(ident); ident != "" {
			cleaned = append(cleaned, ident)
		}
	}
	if len(cleaned) == 0 {
		return ProjectView{}, apperror.Validation("at least one roll number or email is required")
	}

	p, err := s.projects.GetByLeader(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProjectView{}, apperror.NotFound("no project you lead")
		}
		return ProjectView{}, err
	}

	users, err := s.users.ResolveIdentifiers(ctx, cleaned)
	if err != nil {
		return ProjectView{}, err
	}
	if len(users) != len(cleaned) {
		return ProjectView{}, apperror.Validation("Some users were not found")
	}

	memberIDs := make([]primitive.ObjectID, 0, len(users))
	for _, u := range users {
		memberIDs = append(memberIDs, u.ID)
	}

	if err := s.projects.AddMembers(ctx, p.ID, memberIDs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProjectView{}, apperror.NotFound("no project you lead")
		}
		return ProjectView{}, err
	}

	// Record membership slots so future creates by these users hit the
	// unique index. Users already holding a slot are skipped; adding a
	// member does not itself check the one-project rule.
	res, err := s.memberships.ClaimBatch(ctx, p.ID, memberIDs)
	if err != nil {
		s.log.Error("failed to record membership claims",
			zap.Stringer("project_id", p.ID), zap.Error(err))
	} else if res.Duplicates > 0 {
		s.log.Warn("added members already held a membership elsewhere",
			zap.Stringer("project_id", p.ID),
			zap.Int("duplicates", res.Duplicates))
	}

	updated, err := s.projects.GetByID(ctx, p.ID)
	if err != nil {
		return ProjectView{}, err
	}
	return s.resolveView(ctx, updated)
}
