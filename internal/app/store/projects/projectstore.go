// internal/app/store/projects/projectstore.go
//
// The mentor-request and mentor-decision writes here are single
// conditional updates on purpose: the filter carries the precondition
// (mentor unset, request pending) so two racing requests cannot both
// succeed. A zero-match result is then diagnosed with a follow-up read
// into the right sentinel error.
package projectstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

var (
	// ErrMentorAlreadyAssigned is returned when a request or accept
	// arrives after the project already has its mentor.
	ErrMentorAlreadyAssigned = errors.New("project already has an assigned mentor")

	// ErrDuplicateMentorRequest is returned when the same mentor is
	// requested twice.
	ErrDuplicateMentorRequest = errors.New("mentor has already been requested for this project")

	// ErrNotRequested is returned when a mentor decides on a project
	// that has no pending request for them.
	ErrNotRequested = errors.New("mentor has no pending request for this project")
)

// Create inserts a project. The caller has already deduplicated the
// tech stack and sanitized the description text.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.TitleCI = text.Fold(p.Title)
	if p.Status == "" {
		p.Status = models.ProjectStatusPending
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetByLeader returns the project the user created, or
// mongo.ErrNoDocuments if they lead none.
func (s *Store) GetByLeader(ctx context.Context, leaderID primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"created_by": leaderID}).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// AddMembers unions the given user ids into team_members in one write.
// Re-adding existing members is a no-op, so the operation is safe to
// retry and safe under concurrent additions.
func (s *Store) AddMembers(ctx context.Context, projectID primitive.ObjectID, memberIDs []primitive.ObjectID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	res, err := s.c.UpdateByID(ctx, projectID, bson.M{
		"$addToSet": bson.M{"team_members": bson.M{"$each": memberIDs}},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RequestMentor appends mentorID to mentor_requests, but only while the
// project has no assigned mentor and no pending request for the same
// mentor. The precondition lives in the filter, so the append is
// race-free; a zero-match result is diagnosed into the right sentinel.
func (s *Store) RequestMentor(ctx context.Context, projectID, mentorID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":             projectID,
			"assigned_mentor": nil,
			"mentor_requests": bson.M{"$ne": mentorID},
		},
		bson.M{
			"$push": bson.M{"mentor_requests": mentorID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	return s.diagnoseRequest(ctx, projectID, mentorID)
}

func (s *Store) diagnoseRequest(ctx context.Context, projectID, mentorID primitive.ObjectID) error {
	p, err := s.GetByID(ctx, projectID)
	if err != nil {
		return err // includes mongo.ErrNoDocuments
	}
	if p.AssignedMentor != nil {
		return ErrMentorAlreadyAssigned
	}
	if p.HasMentorRequest(mentorID) {
		return ErrDuplicateMentorRequest
	}
	// The project changed between the write and this read; let the
	// caller retry.
	return ErrDuplicateMentorRequest
}

// AcceptMentor sets assigned_mentor and clears mentor_requests, but
// only if the mentor is still pending and no mentor has been assigned.
// Every other pending candidate is silently withdrawn by the clear.
func (s *Store) AcceptMentor(ctx context.Context, projectID, mentorID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":             projectID,
			"assigned_mentor": nil,
			"mentor_requests": mentorID,
		},
		bson.M{
			"$set": bson.M{
				"assigned_mentor": mentorID,
				"mentor_requests": bson.A{},
				"updated_at":      time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	return s.diagnoseDecision(ctx, projectID, mentorID)
}

// RejectMentor removes only mentorID from mentor_requests; other
// pending candidates are untouched.
func (s *Store) RejectMentor(ctx context.Context, projectID, mentorID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":             projectID,
			"mentor_requests": mentorID,
		},
		bson.M{
			"$pull": bson.M{"mentor_requests": mentorID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	return s.diagnoseDecision(ctx, projectID, mentorID)
}

func (s *Store) diagnoseDecision(ctx context.Context, projectID, mentorID primitive.ObjectID) error {
	p, err := s.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.HasMentorRequest(mentorID) {
		if p.AssignedMentor != nil && *p.AssignedMentor != mentorID {
			return ErrMentorAlreadyAssigned
		}
		return ErrNotRequested
	}
	return ErrMentorAlreadyAssigned
}

// InfoUpdate carries the optional fields of a partial project update.
// Nil pointers mean "leave unchanged".
type InfoUpdate struct {
	Title       *string
	Description *models.ProjectDescription
	Document    *models.ProjectDocument
}

// UpdateInfo merges the supplied fields and appends the uploaded
// document, if any, to the documents list.
func (s *Store) UpdateInfo(ctx context.Context, projectID primitive.ObjectID, upd InfoUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
		set["title_ci"] = text.Fold(*upd.Title)
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	update := bson.M{"$set": set}
	if upd.Document != nil {
		update["$push"] = bson.M{"documents": *upd.Document}
	}

	res, err := s.c.UpdateByID(ctx, projectID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a project by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListFilter shapes the admin/faculty list query. Zero values mean "no
// filter"; Page and Limit must already be clamped by the caller.
type ListFilter struct {
	Status string
	Mentor *primitive.ObjectID
	Search string // case-insensitive substring on title
	Page   int
	Limit  int
}

// List returns one page of projects plus the total count across all
// pages for the same filter.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Project, int64, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Mentor != nil {
		filter["assigned_mentor"] = *f.Mentor
	}
	if f.Search != "" {
		// title_ci is already folded, so fold the needle and match on it.
		filter["title_ci"] = bson.M{"$regex": regexp.QuoteMeta(text.Fold(f.Search))}
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "title_ci", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(f.Page-1) * int64(f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListForStudent returns projects where the user is leader or member.
func (s *Store) ListForStudent(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error) {
	return s.find(ctx, bson.M{"$or": []bson.M{
		{"created_by": userID},
		{"team_members": userID},
	}})
}

// ListForMentor returns projects where the mentor is assigned.
func (s *Store) ListForMentor(ctx context.Context, mentorID primitive.ObjectID) ([]models.Project, error) {
	return s.find(ctx, bson.M{"assigned_mentor": mentorID})
}

// ListRequestedOf returns projects holding a pending request for the
// mentor, oldest first — the mentor's inbox.
func (s *Store) ListRequestedOf(ctx context.Context, mentorID primitive.ObjectID) ([]models.Project, error) {
	return s.find(ctx, bson.M{"mentor_requests": mentorID})
}

// ListAll returns every project, unfiltered and unpaginated.
func (s *Store) ListAll(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
