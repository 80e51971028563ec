// internal/app/services/projectlifecycle/mentor.go
package projectlifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	projectstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/projects"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/mailer"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Decision values for DecideMentorRequest.
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// RequestMentor appends a pending mentor candidacy to the caller's
// project. The mentor is matched by exact name and email; requesting
// the same mentor twice, or requesting while a mentor is assigned, is a
// conflict. Notification mail is best-effort.
func (s *Service) RequestMentor(ctx context.Context, caller Caller, mentorName, mentorEmail string) (ProjectView, error) {
	if strings.TrimSpace(mentorName) == "" || strings.TrimSpace(mentorEmail) == "" {
		return ProjectView{}, apperror.Validation("mentor name and email are required")
	}

	p, err := s.projects.GetByLeader(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProjectView{}, apperror.NotFound("no project you lead")
		}
		return ProjectView{}, err
	}

	mentor, err := s.users.FindMentor(ctx, mentorName, mentorEmail)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProjectView{}, apperror.NotFound("no mentor found with that name and email")
		}
		return ProjectView{}, err
	}

	if err := s.projects.RequestMentor(ctx, p.ID, mentor.ID); err != nil {
		switch {
		case errors.Is(err, projectstore.ErrMentorAlreadyAssigned):
			return ProjectView{}, apperror.Conflict("project already has an assigned mentor")
		case errors.Is(err, projectstore.ErrDuplicateMentorRequest):
			return ProjectView{}, apperror.Conflict("mentor has already been requested")
		case errors.Is(err, mongo.ErrNoDocuments):
			return ProjectView{}, apperror.NotFound("project not found")
		}
		return ProjectView{}, err
	}

	s.notifyMentorRequested(ctx, mentor, p, caller)

	updated, err := s.projects.GetByID(ctx, p.ID)
	if err != nil {
		return ProjectView{}, err
	}
	return s.resolveView(ctx, updated)
}

// DecideMentorRequest records a mentor's accept or reject of their own
// pending request. Accept assigns the mentor and withdraws every other
// pending candidate; reject removes only the caller's candidacy.
func (s *Service) DecideMentorRequest(ctx context.Context, caller Caller, projectID primitive.ObjectID, decision string) (ProjectView, error) {
	if caller.Role != models.RoleMentor {
		return ProjectView{}, apperror.Forbidden("only mentors can decide mentor requests")
	}

	switch strings.ToLower(strings.TrimSpace(decision)) {
	case DecisionAccept:
		err := s.projects.AcceptMentor(ctx, projectID, caller.ID)
		if err != nil {
			return ProjectView{}, s.decisionError(err)
		}
		s.log.Info("mentor request accepted",
			zap.Stringer("project_id", projectID),
			zap.Stringer("mentor_id", caller.ID))
	case DecisionReject:
		err := s.projects.RejectMentor(ctx, projectID, caller.ID)
		if err != nil {
			return ProjectView{}, s.decisionError(err)
		}
		s.log.Info("mentor request rejected",
			zap.Stringer("project_id", projectID),
			zap.Stringer("mentor_id", caller.ID))
	default:
		return ProjectView{}, apperror.Validation("use 'accept' or 'reject'")
	}

	updated, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return ProjectView{}, err
	}
	return s.resolveView(ctx, updated)
}

func (s *Service) decisionError(err error) error {
	switch {
	case errors.Is(err, projectstore.ErrNotRequested):
		return apperror.Forbidden("not requested for this project")
	case errors.Is(err, projectstore.ErrMentorAlreadyAssigned):
		return apperror.Conflict("project already has an assigned mentor")
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperror.NotFound("project not found")
	}
	return err
}

// RequestedProjects returns the mentor's inbox: projects holding a
// pending request for them.
func (s *Service) RequestedProjects(ctx context.Context, caller Caller) ([]ProjectView, error) {
	if caller.Role != models.RoleMentor {
		return nil, apperror.Forbidden("only mentors have a request inbox")
	}
	projects, err := s.projects.ListRequestedOf(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, projects)
}

func (s *Service) notifyMentorRequested(ctx context.Context, mentor models.User, p models.Project, caller Caller) {
	if s.mail == nil {
		return
	}
	msg := mailer.BuildMentorRequestEmail(mailer.MentorRequestEmailData{
		SiteName:     s.siteName,
		MentorName:   mentor.FullName,
		ProjectTitle: p.Title,
		LeaderName:   caller.Name,
		ProjectLink:  fmt.Sprintf("%s/projects/%s", strings.TrimRight(s.baseURL, "/"), p.ID.Hex()),
	})
	msg.To = mentor.Email
	if err := s.mail.Send(ctx, msg); err != nil {
		// Mail is a courtesy; the request itself already succeeded.
		s.log.Warn("mentor request notification failed",
			zap.Stringer("project_id", p.ID),
			zap.String("mentor_email", mentor.Email),
			zap.Error(err))
	}
}
