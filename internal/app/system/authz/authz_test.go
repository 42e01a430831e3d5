package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/progresshub/internal/app/system/auth"
	"github.com/dalemusser/progresshub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	role, name, uid, ok := authz.UserCtx(req)

	if ok {
		t.Error("expected ok=false without a user")
	}
	if role != "visitor" || name != "" || uid != primitive.NilObjectID {
		t.Errorf("unexpected visitor context: %q %q %v", role, name, uid)
	}
}

func TestUserCtx_MalformedIDFailsClosed(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "not-an-objectid", Role: "admin"})

	_, _, _, ok := authz.UserCtx(req)

	if ok {
		t.Error("expected ok=false for malformed user ID")
	}
}

func TestUserCtx_NormalizesRole(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: id.Hex(), Name: "Ada", Role: "Coach"})

	role, name, uid, ok := authz.UserCtx(req)

	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != "coach" || name != "Ada" || uid != id {
		t.Errorf("unexpected context: %q %q %v", role, name, uid)
	}
}

func TestCanViewReports(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	cases := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"analyst", true},
		{"coach", true},
		{"learner", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		req = auth.WithTestUser(req, &auth.SessionUser{ID: id, Role: tc.role})
		if got := authz.CanViewReports(req); got != tc.want {
			t.Errorf("role %s: expected %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestUserClassroomID(t *testing.T) {
	cid := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: primitive.NewObjectID().Hex(), Role: "coach", ClassroomID: cid.Hex()})

	if got := authz.UserClassroomID(req); got != cid {
		t.Errorf("expected %v, got %v", cid, got)
	}

	bare := httptest.NewRequest("GET", "/", nil)
	if got := authz.UserClassroomID(bare); got != primitive.NilObjectID {
		t.Errorf("expected NilObjectID, got %v", got)
	}
}
