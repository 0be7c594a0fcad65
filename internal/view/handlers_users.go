package view

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2k1998/bwc-portal/internal/core"
	applog "github.com/2k1998/bwc-portal/internal/log"
	"github.com/2k1998/bwc-portal/internal/policy"
)

// usersView is the template model for the user administration partial.
type usersView struct {
	Users []core.User
	Actor core.User
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.fetchCtx(r)
	defer cancel()

	actor, err := s.currentUser(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "current user fetch failed", applog.FieldError, err)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "user list fetch failed", applog.FieldError, err)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	view := usersView{Users: users, Actor: actor}
	if err := s.templates.ExecuteTemplate(w, "users.html", view); err != nil {
		s.logger.ErrorContext(ctx, "users template failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleUserRole(w http.ResponseWriter, r *http.Request) {
	role := core.Role(r.FormValue("role"))
	if !role.Valid() {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}
	s.userAction(w, r, policy.ActionChangeRole, func(ctx context.Context, target core.User) error {
		return s.backend.UpdateUserRole(ctx, target.ID, role)
	})
}

func (s *Server) handleUserActive(w http.ResponseWriter, r *http.Request) {
	active := r.FormValue("active") == "true"
	s.userAction(w, r, policy.ActionChangeActive, func(ctx context.Context, target core.User) error {
		return s.backend.SetUserActive(ctx, target.ID, active)
	})
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	s.userAction(w, r, policy.ActionDeleteUser, func(ctx context.Context, target core.User) error {
		return s.backend.DeleteUser(ctx, target.ID)
	})
}

// userAction runs an administrative mutation against a target user. The
// policy check happens before any write; a denial is returned verbatim
// so the UI can show the reason.
func (s *Server) userAction(w http.ResponseWriter, r *http.Request, action policy.Action, write func(context.Context, core.User) error) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	targetID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	ctx, cancel := s.fetchCtx(r)
	defer cancel()

	actor, err := s.currentUser(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "current user fetch failed", applog.FieldError, err)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	target, err := s.findUser(ctx, targetID)
	if err != nil {
		s.logger.ErrorContext(ctx, "target user lookup failed", applog.FieldError, err, applog.FieldUserID, targetID)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	if decision := policy.Allow(actor, action, target); !decision.Allowed {
		s.logger.WarnContext(ctx, "admin action denied",
			"action", string(action), "actor_id", actor.ID, "target_id", target.ID, "reason", decision.Reason)
		http.Error(w, decision.Reason, http.StatusForbidden)
		return
	}

	if err := write(ctx, target); err != nil {
		s.logger.ErrorContext(ctx, "admin action failed", applog.FieldError, err,
			"action", string(action), "target_id", target.ID)
		s.renderError(w, http.StatusBadGateway)
		return
	}

	s.handleUserList(w, r)
}

func (s *Server) findUser(ctx context.Context, id int64) (core.User, error) {
	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		return core.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return core.User{}, &userNotFoundError{id: id}
}

type userNotFoundError struct {
	id int64
}

func (e *userNotFoundError) Error() string {
	return "user " + strconv.FormatInt(e.id, 10) + " not found"
}
