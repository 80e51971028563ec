// internal/app/services/projectlifecycle/update.go
package projectlifecycle

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	projectstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/projects"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/apperror"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/htmlsanitize"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/ordset"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DocumentUpload is a file handed in with an update.
type DocumentUpload struct {
	Filename string
	Content  io.Reader
}

// UpdateInput carries the optional fields of a partial update. Nil
// means "leave unchanged".
type UpdateInput struct {
	Title       *string
	Description *models.ProjectDescription
	Document    *DocumentUpload
}

// Update merges the supplied fields into the project and appends the
// uploaded document, if any. Any signed-in team context may call this;
// there is deliberately no leader check here (known gap, kept until
// product confirms the intended rule).
func (s *Service) Update(ctx context.Context, caller Caller, projectID primitive.ObjectID, in UpdateInput) (ProjectView, error) {
	if in.Title == nil && in.Description == nil && in.Document == nil {
		return ProjectView{}, apperror.Validation("nothing to update")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return ProjectView{}, apperror.Validation("title cannot be empty")
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProjectView{}, apperror.NotFound("project not found")
		}
		return ProjectView{}, err
	}

	upd := projectstore.InfoUpdate{}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		upd.Title = &t
	}
	if in.Description != nil {
		d := models.ProjectDescription{
			Abstract:            htmlsanitize.Sanitize(in.Description.Abstract),
			ProblemStatement:    htmlsanitize.Sanitize(in.Description.ProblemStatement),
			ProposedMethodology: htmlsanitize.Sanitize(in.Description.ProposedMethodology),
			TechStack:           ordset.Fold(in.Description.TechStack),
		}
		upd.Description = &d
	}

	if in.Document != nil {
		stored, err := s.media.Upload(ctx, in.Document.Filename, in.Document.Content)
		if err != nil {
			return ProjectView{}, apperror.Collaborator(err, "failed to store document")
		}
		upd.Document = &models.ProjectDocument{
			Name:       stored.Name,
			URL:        stored.URL,
			Format:     stored.Format,
			UploadedAt: time.Now().UTC(),
		}
	}

	if err := s.projects.UpdateInfo(ctx, projectID, upd); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProjectView{}, apperror.NotFound("project not found")
		}
		return ProjectView{}, err
	}

	s.log.Info("project updated",
		zap.Stringer("project_id", projectID),
		zap.Stringer("caller_id", caller.ID))

	updated, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return ProjectView{}, err
	}
	return s.resolveView(ctx, updated)
}
