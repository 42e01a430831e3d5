// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/progresshub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles recognized across the app.
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleCoach   = "coach"
	RoleLearner = "learner"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present in context or the user ID is malformed,
// it returns "visitor", "", NilObjectID, false, so ok=true always means a
// valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}

// IsAnalyst reports whether the current request's user is an analyst.
func IsAnalyst(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAnalyst
}

// IsCoach reports whether the current request's user is a coach.
func IsCoach(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleCoach
}

// CanViewReports reports whether the current user may open the learners
// report at all. Coaches are additionally scoped to their classroom by
// the handlers.
func CanViewReports(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	return role == RoleAdmin || role == RoleAnalyst || role == RoleCoach
}

// UserClassroomID returns the current user's classroom ID as an ObjectID.
// Returns NilObjectID if the user is not logged in or has no classroom.
func UserClassroomID(r *http.Request) primitive.ObjectID {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ClassroomID == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(user.ClassroomID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
