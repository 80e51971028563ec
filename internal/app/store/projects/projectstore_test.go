package projectstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/indexes"
	"github.com/Garvit-Adlakha/mentormatrix/internal/domain/models"
	"github.com/Garvit-Adlakha/mentormatrix/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func setup(t *testing.T) (*Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return New(db), testutil.NewFixtures(t, db)
}

func TestCreate(t *testing.T) {
	s, _ := setup(t)
	ctx := testutil.TestContext(t)

	leader := primitive.NewObjectID()
	p, err := s.Create(ctx, models.Project{
		Title:       "AI Tutor",
		CreatedBy:   leader,
		TeamMembers: []primitive.ObjectID{leader},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID.IsZero() {
		t.Error("id not generated")
	}
	if p.Status != models.ProjectStatusPending {
		t.Errorf("status = %q, want pending default", p.Status)
	}
	if p.TitleCI == "" {
		t.Error("title_ci not set")
	}

	// A caller-provided id is kept, not replaced.
	pre := primitive.NewObjectID()
	p2, err := s.Create(ctx, models.Project{ID: pre, Title: "Other", CreatedBy: primitive.NewObjectID()})
	if err != nil {
		t.Fatal(err)
	}
	if p2.ID != pre {
		t.Errorf("id = %s, want the pre-generated %s", p2.ID.Hex(), pre.Hex())
	}
}

func TestGetByLeader(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	leader := primitive.NewObjectID()
	created := fx.CreateProject(ctx, "AI Tutor", leader)

	p, err := s.GetByLeader(ctx, leader)
	if err != nil {
		t.Fatalf("GetByLeader: %v", err)
	}
	if p.ID != created.ID {
		t.Errorf("got %s, want %s", p.ID.Hex(), created.ID.Hex())
	}

	if _, err := s.GetByLeader(ctx, primitive.NewObjectID()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown leader: err = %v", err)
	}
}

func TestAddMembers(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	leader := primitive.NewObjectID()
	p := fx.CreateProject(ctx, "AI Tutor", leader)
	m1 := primitive.NewObjectID()
	m2 := primitive.NewObjectID()

	if err := s.AddMembers(ctx, p.ID, []primitive.ObjectID{m1, m2}); err != nil {
		t.Fatalf("AddMembers: %v", err)
	}
	// $addToSet: re-adding is a no-op.
	if err := s.AddMembers(ctx, p.ID, []primitive.ObjectID{m1, leader}); err != nil {
		t.Fatalf("repeat AddMembers: %v", err)
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.TeamMembers) != 3 {
		t.Errorf("team = %d members, want 3", len(got.TeamMembers))
	}

	// Unknown project surfaces as no documents.
	if err := s.AddMembers(ctx, primitive.NewObjectID(), []primitive.ObjectID{m1}); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown project: err = %v", err)
	}
}

func TestRequestMentor(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	p := fx.CreateProject(ctx, "AI Tutor", primitive.NewObjectID())
	mentorX := primitive.NewObjectID()
	mentorY := primitive.NewObjectID()

	if err := s.RequestMentor(ctx, p.ID, mentorX); err != nil {
		t.Fatalf("request X: %v", err)
	}
	if err := s.RequestMentor(ctx, p.ID, mentorY); err != nil {
		t.Fatalf("request Y: %v", err)
	}

	// Same mentor again.
	if err := s.RequestMentor(ctx, p.ID, mentorX); !errors.Is(err, ErrDuplicateMentorRequest) {
		t.Errorf("duplicate request: err = %v", err)
	}

	// After an accept, further requests see the assignment.
	if err := s.AcceptMentor(ctx, p.ID, mentorX); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := s.RequestMentor(ctx, p.ID, primitive.NewObjectID()); !errors.Is(err, ErrMentorAlreadyAssigned) {
		t.Errorf("request after assignment: err = %v", err)
	}
}

func TestAcceptMentor(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	p := fx.CreateProject(ctx, "AI Tutor", primitive.NewObjectID())
	mentorX := primitive.NewObjectID()
	mentorY := primitive.NewObjectID()

	if err := s.RequestMentor(ctx, p.ID, mentorX); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestMentor(ctx, p.ID, mentorY); err != nil {
		t.Fatal(err)
	}

	// A mentor with no pending request cannot accept.
	if err := s.AcceptMentor(ctx, p.ID, primitive.NewObjectID()); !errors.Is(err, ErrNotRequested) {
		t.Errorf("unrequested accept: err = %v", err)
	}

	if err := s.AcceptMentor(ctx, p.ID, mentorX); err != nil {
		t.Fatalf("accept: %v", err)
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.AssignedMentor == nil || *got.AssignedMentor != mentorX {
		t.Errorf("assigned = %v, want X", got.AssignedMentor)
	}
	if len(got.MentorRequests) != 0 {
		t.Errorf("requests not cleared: %v", got.MentorRequests)
	}

	// The sibling request was cleared, so Y's late accept sees the
	// assignment.
	if err := s.AcceptMentor(ctx, p.ID, mentorY); !errors.Is(err, ErrMentorAlreadyAssigned) {
		t.Errorf("late accept: err = %v", err)
	}
}

func TestRejectMentor(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	p := fx.CreateProject(ctx, "AI Tutor", primitive.NewObjectID())
	mentorX := primitive.NewObjectID()
	mentorY := primitive.NewObjectID()

	if err := s.RequestMentor(ctx, p.ID, mentorX); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestMentor(ctx, p.ID, mentorY); err != nil {
		t.Fatal(err)
	}

	if err := s.RejectMentor(ctx, p.ID, mentorX); err != nil {
		t.Fatalf("reject: %v", err)
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.AssignedMentor != nil {
		t.Error("reject assigned a mentor")
	}
	if len(got.MentorRequests) != 1 || got.MentorRequests[0] != mentorY {
		t.Errorf("requests = %v, want just Y", got.MentorRequests)
	}

	// Rejecting twice: the request is gone.
	if err := s.RejectMentor(ctx, p.ID, mentorX); !errors.Is(err, ErrNotRequested) {
		t.Errorf("double reject: err = %v", err)
	}
}

func TestUpdateInfo(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	p := fx.CreateProject(ctx, "AI Tutor", primitive.NewObjectID())

	title := "AI Tutor v2"
	doc := models.ProjectDocument{Name: "proposal.pdf", URL: "/media/documents/x", Format: "pdf"}
	if err := s.UpdateInfo(ctx, p.ID, InfoUpdate{Title: &title, Document: &doc}); err != nil {
		t.Fatalf("UpdateInfo: %v", err)
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "AI Tutor v2" {
		t.Errorf("title = %q", got.Title)
	}
	if got.TitleCI == p.TitleCI {
		t.Error("title_ci not refolded")
	}
	if len(got.Documents) != 1 || got.Documents[0].Name != "proposal.pdf" {
		t.Errorf("documents = %+v", got.Documents)
	}
	// Untouched fields survive a partial update.
	if got.Description.Abstract != p.Description.Abstract {
		t.Error("description changed by title-only update")
	}

	if err := s.UpdateInfo(ctx, primitive.NewObjectID(), InfoUpdate{Title: &title}); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown project: err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	p := fx.CreateProject(ctx, "AI Tutor", primitive.NewObjectID())

	n, err := s.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	n, err = s.Delete(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second delete = %d, want 0", n)
	}
}

func TestList(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	mentor := primitive.NewObjectID()
	for i := 0; i < 5; i++ {
		p := fx.CreateProject(ctx, fmt.Sprintf("Project %c", 'A'+i), primitive.NewObjectID())
		if i == 0 {
			if err := s.RequestMentor(ctx, p.ID, mentor); err != nil {
				t.Fatal(err)
			}
			if err := s.AcceptMentor(ctx, p.ID, mentor); err != nil {
				t.Fatal(err)
			}
		}
	}

	// Unfiltered, first page of 2.
	page, total, err := s.List(ctx, ListFilter{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 || len(page) != 2 {
		t.Errorf("total = %d len = %d", total, len(page))
	}
	if page[0].Title != "Project A" || page[1].Title != "Project B" {
		t.Errorf("page 1 = %q, %q, want title order", page[0].Title, page[1].Title)
	}

	// Page 3 holds the remainder.
	page, _, err = s.List(ctx, ListFilter{Page: 3, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 1 || page[0].Title != "Project E" {
		t.Errorf("page 3 = %+v", page)
	}

	// Mentor filter.
	page, total, err = s.List(ctx, ListFilter{Mentor: &mentor, Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || page[0].Title != "Project A" {
		t.Errorf("mentor filter: total = %d, page = %+v", total, page)
	}

	// Search folds case and matches substrings; regex metacharacters in
	// the needle are literal.
	page, total, err = s.List(ctx, ListFilter{Search: "pRoJeCt c", Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || page[0].Title != "Project C" {
		t.Errorf("search: total = %d, page = %+v", total, page)
	}
	_, total, err = s.List(ctx, ListFilter{Search: "Project.*", Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("regex needle matched %d, want 0", total)
	}
}

func TestRoleScopedLists(t *testing.T) {
	s, fx := setup(t)
	ctx := testutil.TestContext(t)

	leader := primitive.NewObjectID()
	member := primitive.NewObjectID()
	mentor := primitive.NewObjectID()

	p := fx.CreateProject(ctx, "AI Tutor", leader)
	if err := s.AddMembers(ctx, p.ID, []primitive.ObjectID{member}); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestMentor(ctx, p.ID, mentor); err != nil {
		t.Fatal(err)
	}
	fx.CreateProject(ctx, "Unrelated", primitive.NewObjectID())

	for name, uid := range map[string]primitive.ObjectID{"leader": leader, "member": member} {
		got, err := s.ListForStudent(ctx, uid)
		if err != nil || len(got) != 1 || got[0].ID != p.ID {
			t.Errorf("ListForStudent(%s): %v (%d)", name, err, len(got))
		}
	}

	// The request puts the project in the mentor's inbox but not in
	// their assigned list.
	inbox, err := s.ListRequestedOf(ctx, mentor)
	if err != nil || len(inbox) != 1 {
		t.Fatalf("inbox: %v (%d)", err, len(inbox))
	}
	assigned, err := s.ListForMentor(ctx, mentor)
	if err != nil || len(assigned) != 0 {
		t.Errorf("assigned before accept: %v (%d)", err, len(assigned))
	}

	if err := s.AcceptMentor(ctx, p.ID, mentor); err != nil {
		t.Fatal(err)
	}
	assigned, err = s.ListForMentor(ctx, mentor)
	if err != nil || len(assigned) != 1 {
		t.Errorf("assigned after accept: %v (%d)", err, len(assigned))
	}

	all, err := s.ListAll(ctx)
	if err != nil || len(all) != 2 {
		t.Errorf("ListAll: %v (%d)", err, len(all))
	}
}
