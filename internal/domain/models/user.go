// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents students, mentors, and admins.
//
// NOTE:
//   - Project membership is not embedded on User.
//     Use the project_memberships collection to discover a user's project.
//   - RollNo, SAPID, Year, and Skills are populated for students only;
//     Expertise for mentors only. Role is immutable after creation.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	FullNameCI   string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	AuthMethod   string             `bson:"auth_method,omitempty" json:"auth_method,omitempty"` // internal | google
	Role         string             `bson:"role" json:"role"`                                   // student | mentor | admin
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	// Student fields
	RollNo string   `bson:"roll_no,omitempty" json:"roll_no,omitempty"`
	SAPID  string   `bson:"sap_id,omitempty" json:"sap_id,omitempty"`
	Year   int      `bson:"year,omitempty" json:"year,omitempty"`
	Skills []string `bson:"skills,omitempty" json:"skills,omitempty"`

	// Mentor fields
	Expertise []string `bson:"expertise,omitempty" json:"expertise,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
