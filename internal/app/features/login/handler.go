// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	learnerstore "github.com/dalemusser/progresshub/internal/app/store/learners"
	"github.com/dalemusser/progresshub/internal/app/system/auth"
	"github.com/dalemusser/progresshub/internal/app/system/status"
	"github.com/dalemusser/progresshub/internal/app/system/timeouts"
	"github.com/dalemusser/progresshub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type loginVM struct {
	viewdata.BaseVM
	Email     string
	ReturnURL string
	ErrorMsg  string
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginVM{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: safeReturnURL(r.URL.Query().Get("return")),
	}
	templates.Render(w, r, "login", data)
}

// HandleLoginPost handles POST /login with email + password.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "", "", "Invalid form submission.")
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	returnURL := safeReturnURL(r.PostFormValue("return"))

	if email == "" || password == "" {
		h.renderError(w, r, email, returnURL, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := learnerstore.New(h.DB)
	account, err := store.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("login: lookup failed", zap.Error(err))
		}
		h.renderError(w, r, email, returnURL, "Invalid email or password.")
		return
	}

	if !store.VerifyPassword(account, password) {
		h.Log.Info("login: bad password", zap.String("email", account.Email))
		h.renderError(w, r, email, returnURL, "Invalid email or password.")
		return
	}

	if account.Status != status.Active {
		h.renderError(w, r, email, returnURL, "This account is disabled.")
		return
	}

	classroomID := ""
	if account.ClassroomID != nil {
		classroomID = account.ClassroomID.Hex()
	}

	u := &auth.SessionUser{
		ID:          account.ID.Hex(),
		Name:        account.FullName,
		Email:       account.Email,
		Role:        account.Role,
		ClassroomID: classroomID,
	}
	if err := auth.SignIn(w, r, u); err != nil {
		h.Log.Error("login: save session failed", zap.Error(err))
		h.renderError(w, r, email, returnURL, "Unable to sign you in. Please try again.")
		return
	}

	h.Log.Info("login: signed in",
		zap.String("user_id", u.ID),
		zap.String("role", u.Role))

	if returnURL == "" {
		returnURL = "/"
	}
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, email, returnURL, msg string) {
	data := loginVM{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Email:     email,
		ReturnURL: returnURL,
		ErrorMsg:  msg,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "login", data)
}

// safeReturnURL only accepts same-site relative paths so the login flow
// cannot be used as an open redirect.
func safeReturnURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	return raw
}
