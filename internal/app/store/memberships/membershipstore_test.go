package membershipstore

import (
	"errors"
	"testing"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/indexes"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"github.com/Garvit-Adlakha/mentormatrix/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func setup(t *testing.T) *Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return New(db)
}

func TestClaim(t *testing.T) {
	s := setup(t)
	ctx := testutil.TestContext(t)

	user := primitive.NewObjectID()
	projectA := primitive.NewObjectID()
	projectB := primitive.NewObjectID()

	if err := s.Claim(ctx, user, projectA, models.MembershipLeader); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	// A second claim for the same user fails no matter the project.
	if err := s.Claim(ctx, user, projectB, models.MembershipMember); !errors.Is(err, ErrAlreadyInProject) {
		t.Errorf("second claim: err = %v, want ErrAlreadyInProject", err)
	}

	m, err := s.GetByUser(ctx, user)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if m.ProjectID != projectA || m.Role != models.MembershipLeader {
		t.Errorf("membership = %+v, want project A leader", m)
	}
}

func TestClaimRejectsBadRole(t *testing.T) {
	s := setup(t)
	ctx := testutil.TestContext(t)

	err := s.Claim(ctx, primitive.NewObjectID(), primitive.NewObjectID(), "owner")
	if err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestClaimBatch(t *testing.T) {
	s := setup(t)
	ctx := testutil.TestContext(t)

	taken := primitive.NewObjectID()
	free1 := primitive.NewObjectID()
	free2 := primitive.NewObjectID()
	otherProject := primitive.NewObjectID()
	project := primitive.NewObjectID()

	if err := s.Claim(ctx, taken, otherProject, models.MembershipMember); err != nil {
		t.Fatal(err)
	}

	// Unordered batch: the duplicate is counted, the rest land.
	res, err := s.ClaimBatch(ctx, project, []primitive.ObjectID{free1, taken, free2})
	if err != nil {
		t.Fatalf("ClaimBatch: %v", err)
	}
	if res.Claimed != 2 || res.Duplicates != 1 {
		t.Errorf("result = %+v, want 2 claimed / 1 duplicate", res)
	}

	for _, uid := range []primitive.ObjectID{free1, free2} {
		m, err := s.GetByUser(ctx, uid)
		if err != nil {
			t.Fatalf("GetByUser(%s): %v", uid.Hex(), err)
		}
		if m.ProjectID != project {
			t.Errorf("membership project = %s, want %s", m.ProjectID.Hex(), project.Hex())
		}
	}

	// The already-taken user keeps the original membership.
	m, err := s.GetByUser(ctx, taken)
	if err != nil {
		t.Fatal(err)
	}
	if m.ProjectID != otherProject {
		t.Errorf("taken user's project = %s, want unchanged", m.ProjectID.Hex())
	}

	// Empty batch is a no-op.
	res, err = s.ClaimBatch(ctx, project, nil)
	if err != nil || res.Claimed != 0 || res.Duplicates != 0 {
		t.Errorf("empty batch: %+v, %v", res, err)
	}
}

func TestReleaseAndReleaseProject(t *testing.T) {
	s := setup(t)
	ctx := testutil.TestContext(t)

	project := primitive.NewObjectID()
	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()

	if err := s.Claim(ctx, u1, project, models.MembershipLeader); err != nil {
		t.Fatal(err)
	}
	if err := s.Claim(ctx, u2, project, models.MembershipMember); err != nil {
		t.Fatal(err)
	}

	// Release frees the slot for a new claim.
	if err := s.Release(ctx, u1); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := s.GetByUser(ctx, u1); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("after release: err = %v, want no documents", err)
	}
	if err := s.Claim(ctx, u1, primitive.NewObjectID(), models.MembershipLeader); err != nil {
		t.Errorf("re-claim after release: %v", err)
	}

	// ReleaseProject removes every slot under the project.
	n, err := s.ReleaseProject(ctx, project)
	if err != nil {
		t.Fatalf("ReleaseProject: %v", err)
	}
	if n != 1 {
		t.Errorf("released %d memberships, want 1 (u2 only)", n)
	}
	if _, err := s.GetByUser(ctx, u2); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("u2 still holds a membership: %v", err)
	}
}
