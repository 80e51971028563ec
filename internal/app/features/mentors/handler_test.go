package mentors

import (
	"net/http"
	"strings"
	"testing"

	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(userstore.New(db), zap.NewNop())

	fx.CreateMentor(ctx, "Dr. X", "x@uni.edu")
	fx.CreateMentor(ctx, "Dr. A", "a@uni.edu")
	fx.CreateStudent(ctx, "Student", "s@uni.edu", "R2021001")

	rec := testutil.NewRecorder()
	h.HandleList(rec.ResponseRecorder, testutil.NewAuthenticatedRequest(http.MethodGet, "/api/mentors", testutil.StudentUser()))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Dr. A")
	rec.AssertContains(t, "Dr. X")

	// The directory never includes students.
	if strings.Contains(rec.Body.String(), "s@uni.edu") {
		t.Errorf("directory leaked a student: %s", rec.Body.String())
	}
}
