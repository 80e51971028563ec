// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/normalize"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/status"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

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
	return &Store{c: db.Collection("users")}
}

var (
	ErrDuplicateEmail  = errors.New("a user with this email already exists")
	ErrDuplicateRollNo = errors.New("a user with this roll number already exists")

	errBadRole = errors.New(`role must be "student", "mentor", or "admin"`)
)

// Create inserts a user after normalizing identity fields. The unique
// indexes on email and roll_no are the source of truth for duplicates.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	if !models.IsValidRole(u.Role) {
		return models.User{}, errBadRole
	}

	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.AuthMethod = normalize.AuthMethod(u.AuthMethod)
	u.RollNo = normalize.RollNo(u.RollNo)
	if u.Status == "" {
		u.Status = status.Active
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			if strings.Contains(err.Error(), "roll_no") {
				return models.User{}, ErrDuplicateRollNo
			}
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByIDs loads the given users in one query. Missing ids are simply
// absent from the result; callers that care compare counts.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindMentor looks up an active mentor matching name and email exactly
// (both compared in their normalized forms). Returns
// mongo.ErrNoDocuments when no such mentor exists.
func (s *Store) FindMentor(ctx context.Context, name, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{
		"role":         models.RoleMentor,
		"status":       status.Active,
		"full_name_ci": text.Fold(normalize.Name(name)),
		"email":        normalize.Email(email),
	}).Decode(&u)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// ResolveIdentifiers resolves a mixed batch of roll numbers and email
// addresses to users. Anything containing "@" is treated as an email,
// everything else as a roll number. Only matches are returned; the
// caller compares counts for all-or-nothing semantics.
func (s *Store) ResolveIdentifiers(ctx context.Context, identifiers []string) ([]models.User, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}

	var emails, rollNos []string
	for _, ident := range identifiers {
		ident = strings.TrimSpace(ident)
		if ident == "" {
			continue
		}
		if strings.Contains(ident, "@") {
			emails = append(emails, normalize.Email(ident))
		} else {
			rollNos = append(rollNos, normalize.RollNo(ident))
		}
	}

	var or []bson.M
	if len(emails) > 0 {
		or = append(or, bson.M{"email": bson.M{"$in": emails}})
	}
	if len(rollNos) > 0 {
		or = append(or, bson.M{"roll_no": bson.M{"$in": rollNos}})
	}
	if len(or) == 0 {
		return nil, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"$or": or})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMentors returns all active mentors sorted by folded name, for the
// mentor directory screen.
func (s *Store) ListMentors(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "full_name_ci", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := s.c.Find(ctx, bson.M{
		"role":   models.RoleMentor,
		"status": status.Active,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
