// internal/app/services/projectlifecycle/service.go
//
// Package projectlifecycle implements the project–mentor assignment
// lifecycle: create, recruit, request-mentor, decide, update, delete,
// list, and visibility queries. It is HTTP-agnostic; every call takes
// an explicit Caller and returns taxonomy errors from apperror.
package projectlifecycle

import (
	membershipstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/memberships"
	projectstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/projects"
	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/mailer"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/media"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Caller is the authenticated identity every operation acts as. It is
// threaded in explicitly; the service never reads ambient request state.
type Caller struct {
	ID   primitive.ObjectID
	Role string
	Name string
}

// Service coordinates the project stores and the external
// collaborators. Mail is optional (nil disables notifications); Media
// is required because update and delete depend on it.
type Service struct {
	projects    *projectstore.Store
	users       *userstore.Store
	memberships *membershipstore.Store
	media       media.Store
	mail        mailer.Sender
	siteName    string
	baseURL     string
	log         *zap.Logger
}

// Config carries the collaborator wiring for New.
type Config struct {
	Media    media.Store
	Mail     mailer.Sender
	SiteName string
	BaseURL  string
	Log      *zap.Logger
}

func New(db *mongo.Database, cfg Config) *Service {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		projects:    projectstore.New(db),
		users:       userstore.New(db),
		memberships: membershipstore.New(db),
		media:       cfg.Media,
		mail:        cfg.Mail,
		siteName:    cfg.SiteName,
		baseURL:     cfg.BaseURL,
		log:         log,
	}
}
