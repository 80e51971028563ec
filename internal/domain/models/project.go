// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectDescription holds the structured description of a project.
// TechStack is stored deduplicated (case-insensitive, insertion order kept).
type ProjectDescription struct {
	Abstract            string   `bson:"abstract" json:"abstract"`
	ProblemStatement    string   `bson:"problem_statement" json:"problem_statement"`
	ProposedMethodology string   `bson:"proposed_methodology" json:"proposed_methodology"`
	TechStack           []string `bson:"tech_stack,omitempty" json:"tech_stack,omitempty"`
}

// ProjectDocument is one uploaded file attached to a project.
// The documents list is append-only; files are removed only when the
// whole project is deleted.
type ProjectDocument struct {
	Name       string    `bson:"name" json:"name"`
	URL        string    `bson:"url" json:"url"`
	Format     string    `bson:"format" json:"format"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

// Project is a student team project with an optional assigned mentor.
//
// Invariants enforced by the stores and the lifecycle service:
//   - TeamMembers always contains CreatedBy.
//   - A mentor request may not be added while AssignedMentor is set, and
//     MentorRequests holds no duplicate mentor ids.
//   - Accepting a request sets AssignedMentor and clears MentorRequests.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped
	Description ProjectDescription `bson:"description" json:"description"`

	CreatedBy      primitive.ObjectID   `bson:"created_by" json:"created_by"`
	TeamMembers    []primitive.ObjectID `bson:"team_members" json:"team_members"`
	AssignedMentor *primitive.ObjectID  `bson:"assigned_mentor,omitempty" json:"assigned_mentor,omitempty"`
	MentorRequests []primitive.ObjectID `bson:"mentor_requests,omitempty" json:"mentor_requests,omitempty"`

	Status    string            `bson:"status" json:"status"` // pending | approved | rejected
	Documents []ProjectDocument `bson:"documents,omitempty" json:"documents,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsLeader reports whether the given user created this project.
func (p *Project) IsLeader(userID primitive.ObjectID) bool {
	return p.CreatedBy == userID
}

// HasMember reports whether the given user is on the team (the leader
// is always a member).
func (p *Project) HasMember(userID primitive.ObjectID) bool {
	for _, m := range p.TeamMembers {
		if m == userID {
			return true
		}
	}
	return false
}

// HasMentorRequest reports whether the given mentor has a pending request.
func (p *Project) HasMentorRequest(mentorID primitive.ObjectID) bool {
	for _, m := range p.MentorRequests {
		if m == mentorID {
			return true
		}
	}
	return false
}

// DocumentURLs returns the stored URLs of all attached documents.
func (p *Project) DocumentURLs() []string {
	if len(p.Documents) == 0 {
		return nil
	}
	urls := make([]string, 0, len(p.Documents))
	for _, d := range p.Documents {
		urls = append(urls, d.URL)
	}
	return urls
}
