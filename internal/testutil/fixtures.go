package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		AuthMethod: "internal",
		Role:       role,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateStudent inserts a test student with a roll number.
func (f *Fixtures) CreateStudent(ctx context.Context, fullName, email, rollNo string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		AuthMethod: "internal",
		Role:       models.RoleStudent,
		Status:     "active",
		RollNo:     rollNo,
		Year:       3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return user
}

// CreateMentor inserts a test mentor.
func (f *Fixtures) CreateMentor(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		AuthMethod: "internal",
		Role:       models.RoleMentor,
		Status:     "active",
		Expertise:  []string{"distributed systems"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test mentor: %v", err)
	}
	return user
}

// CreateAdmin inserts a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleAdmin)
}

// CreateProject inserts a test project led by the given user, with the
// leader's membership record alongside.
func (f *Fixtures) CreateProject(ctx context.Context, title string, leaderID primitive.ObjectID) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	project := models.Project{
		ID:      primitive.NewObjectID(),
		Title:   title,
		TitleCI: text.Fold(title),
		Description: models.ProjectDescription{
			Abstract:            "Test abstract",
			ProblemStatement:    "Test problem statement",
			ProposedMethodology: "Test methodology",
			TechStack:           []string{"Go", "MongoDB"},
		},
		CreatedBy:   leaderID,
		TeamMembers: []primitive.ObjectID{leaderID},
		Status:      models.ProjectStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, project); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	f.CreateMembership(ctx, leaderID, project.ID, models.MembershipLeader)
	return project
}

// CreateMembership inserts a membership record linking a user to a project.
func (f *Fixtures) CreateMembership(ctx context.Context, userID, projectID primitive.ObjectID, role string) models.ProjectMembership {
	f.t.Helper()

	membership := models.ProjectMembership{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		ProjectID: projectID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("project_memberships").InsertOne(ctx, membership); err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return membership
}
