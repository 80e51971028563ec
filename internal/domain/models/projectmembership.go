// internal/domain/models/projectmembership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectMembership is the auxiliary "one active membership" record.
//
// The project_memberships collection carries a unique index on user_id
// alone, which is what makes the one-project-per-user rule atomic under
// concurrent creates: claiming the record either succeeds or fails on
// the duplicate key, independent of any earlier read.
type ProjectMembership struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`
	Role      string             `bson:"role" json:"role"` // leader | member
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
