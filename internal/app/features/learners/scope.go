// internal/app/features/learners/scope.go
package learners

import (
	"net/http"
	"strings"

	"github.com/dalemusser/progresshub/internal/app/report"
	"github.com/dalemusser/progresshub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// scopeState tells the caller how classroom resolution went.
type scopeState int

const (
	scopeOK scopeState = iota
	scopeForbidden
	scopeNoneSelected
)

// resolveScope works out which classroom the request may report on.
//
// Admins and analysts pick any classroom via the "classroom" query
// param; coaches are forced to their own classroom regardless of what
// the query string says.
func resolveScope(r *http.Request) (primitive.ObjectID, scopeState) {
	role, _, _, ok := authz.UserCtx(r)
	if !ok {
		return primitive.NilObjectID, scopeForbidden
	}

	switch role {
	case authz.RoleAdmin, authz.RoleAnalyst:
		param := strings.TrimSpace(r.URL.Query().Get("classroom"))
		if param == "" {
			return primitive.NilObjectID, scopeNoneSelected
		}
		oid, err := primitive.ObjectIDFromHex(param)
		if err != nil {
			return primitive.NilObjectID, scopeNoneSelected
		}
		return oid, scopeOK

	case authz.RoleCoach:
		oid := authz.UserClassroomID(r)
		if oid.IsZero() {
			// Coach account without a classroom link cannot report.
			return primitive.NilObjectID, scopeForbidden
		}
		return oid, scopeOK

	default:
		return primitive.NilObjectID, scopeForbidden
	}
}

// filterRows narrows derived rows by group membership and name search.
// Both filters are optional; groupHex that matches no group leaves the
// rows untouched.
func filterRows(rows []report.Row, groups []report.Group, groupHex, search string) []report.Row {
	if groupHex != "" {
		if gid, err := primitive.ObjectIDFromHex(groupHex); err == nil {
			for _, g := range groups {
				if g.ID != gid {
					continue
				}
				members := make(map[primitive.ObjectID]struct{}, len(g.MemberIDs))
				for _, id := range g.MemberIDs {
					members[id] = struct{}{}
				}
				kept := rows[:0]
				for _, row := range rows {
					if _, in := members[row.ID]; in {
						kept = append(kept, row)
					}
				}
				rows = kept
				break
			}
		}
	}

	if search != "" {
		q := text.Fold(search)
		kept := rows[:0]
		for _, row := range rows {
			if strings.Contains(text.Fold(row.Name), q) {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	return rows
}
