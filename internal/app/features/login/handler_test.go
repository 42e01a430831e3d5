package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/progresshub/internal/app/features/login"
	"github.com/dalemusser/progresshub/internal/app/system/auth"
	"github.com/dalemusser/progresshub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*login.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	if err := auth.InitSessionStore("test-session-key-for-testing-only", "test-session", "", false, logger); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
	t.Cleanup(func() { auth.Store = nil })

	handler := login.NewHandler(db, logger)
	return handler, testutil.NewFixtures(t, db)
}

func postLogin(handler *login.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	// Template rendering may panic in tests without a booted engine;
	// redirect paths never render, so a recover keeps the error-path
	// tests focused on status handling.
	func() {
		defer func() { _ = recover() }()
		handler.HandleLoginPost(rec, req)
	}()
	return rec
}

func TestHandleLoginPost_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	room := fixtures.CreateClassroom(ctx, "Algebra 1")
	fixtures.CreateCoach(ctx, "Test Coach", "coach@example.com", "correct horse", room.ID)

	rec := postLogin(handler, url.Values{
		"email":    {"coach@example.com"},
		"password": {"correct horse"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location: got %q, want %q", loc, "/")
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected session cookie to be set")
	}
}

func TestHandleLoginPost_WithReturnURL(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateAdmin(ctx, "Test Admin", "admin@example.com", "hunter2hunter2")

	rec := postLogin(handler, url.Values{
		"email":    {"admin@example.com"},
		"password": {"hunter2hunter2"},
		"return":   {"/reports/learners?classroom=abc"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/reports/learners?classroom=abc" {
		t.Errorf("Location: got %q, want return URL", loc)
	}
}

func TestHandleLoginPost_RejectsExternalReturnURL(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateAdmin(ctx, "Test Admin", "admin@example.com", "hunter2hunter2")

	rec := postLogin(handler, url.Values{
		"email":    {"admin@example.com"},
		"password": {"hunter2hunter2"},
		"return":   {"//evil.example.com/phish"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location: got %q, want %q (external return must be dropped)", loc, "/")
	}
}

func TestHandleLoginPost_BadPassword(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateAdmin(ctx, "Test Admin", "admin@example.com", "hunter2hunter2")

	rec := postLogin(handler, url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Error("bad password must not redirect")
	}
	if rec.Header().Get("Location") != "" {
		t.Error("bad password must not set Location")
	}
}

func TestHandleLoginPost_DisabledAccount(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	room := fixtures.CreateClassroom(ctx, "Algebra 1")
	fixtures.CreateDisabledLearner(ctx, "Gone Kid", "gone@example.com", room.ID)

	rec := postLogin(handler, url.Values{
		"email":    {"gone@example.com"},
		"password": {"anything"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Error("disabled account must not sign in")
	}
}
