// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"errors"
	"time"

	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("project_memberships")}
}

var errBadRole = errors.New(`role must be "leader" or "member"`)

// ErrAlreadyInProject is returned when the unique index on user_id
// rejects a second membership for the same user.
var ErrAlreadyInProject = errors.New("user is already part of a project")

// Claim inserts the membership record for one user. Because user_id
// carries a unique index, this either claims the user's single
// membership slot or fails with ErrAlreadyInProject — atomically, with
// no prior read.
func (s *Store) Claim(ctx context.Context, userID, projectID primitive.ObjectID, role string) error {
	if role != models.MembershipLeader && role != models.MembershipMember {
		return errBadRole
	}

	doc := models.ProjectMembership{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		ProjectID: projectID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrAlreadyInProject
		}
		return err
	}
	return nil
}

// ClaimBatchResult contains counts from a batch claim.
type ClaimBatchResult struct {
	Claimed    int
	Duplicates int
}

// ClaimBatch records memberships for several users at once, skipping
// users who already hold one. Uses an unordered insert so one duplicate
// does not stop the rest of the batch.
func (s *Store) ClaimBatch(ctx context.Context, projectID primitive.ObjectID, userIDs []primitive.ObjectID) (ClaimBatchResult, error) {
	if len(userIDs) == 0 {
		return ClaimBatchResult{}, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(userIDs))
	for _, uid := range userIDs {
		docs = append(docs, models.ProjectMembership{
			ID:        primitive.NewObjectID(),
			UserID:    uid,
			ProjectID: projectID,
			Role:      models.MembershipMember,
			CreatedAt: now,
		})
	}

	opts := options.InsertMany().SetOrdered(false)
	res, err := s.c.InsertMany(ctx, docs, opts)
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) {
			dups := 0
			for _, we := range bwe.WriteErrors {
				if we.Code != 11000 {
					return ClaimBatchResult{}, err
				}
				dups++
			}
			inserted := 0
			if res != nil {
				inserted = len(res.InsertedIDs)
			}
			return ClaimBatchResult{Claimed: inserted, Duplicates: dups}, nil
		}
		return ClaimBatchResult{}, err
	}
	return ClaimBatchResult{Claimed: len(res.InsertedIDs)}, nil
}

// GetByUser returns the membership record for a user, or
// mongo.ErrNoDocuments when the user has no project.
func (s *Store) GetByUser(ctx context.Context, userID primitive.ObjectID) (models.ProjectMembership, error) {
	var m models.ProjectMembership
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&m); err != nil {
		return models.ProjectMembership{}, err
	}
	return m, nil
}

// Release frees one user's membership slot.
func (s *Store) Release(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}

// ReleaseProject frees every membership slot held under a project.
// Called when the project itself is deleted. Returns the number of
// memberships released.
func (s *Store) ReleaseProject(ctx context.Context, projectID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
