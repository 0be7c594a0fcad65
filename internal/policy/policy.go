// Package policy is the single authorization gate for mutating admin
// actions. Every handler consults Allow before touching a user record;
// the backend enforces the same rules server-side, this layer exists so
// the UI never offers an action that is bound to be rejected.
package policy

import (
	"github.com/2k1998/bwc-portal/internal/core"
)

// Actions the policy knows about.
const (
	ActionChangeRole   Action = "change_role"
	ActionChangeActive Action = "change_active"
	ActionDeleteUser   Action = "delete_user"
)

type Action string

// Decision is the outcome of a policy check. Reason is suitable for
// displaying next to a disabled control.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Allow decides whether actor may perform action on target. Self-service
// mutation of role or active state is denied for every role, including
// admins; user administration as a whole requires the admin role.
func Allow(actor core.User, action Action, target core.User) Decision {
	switch action {
	case ActionChangeRole, ActionChangeActive, ActionDeleteUser:
	default:
		return deny("unknown action")
	}

	if actor.Role != core.RoleAdmin {
		return deny("user administration requires the admin role")
	}
	if actor.ID == target.ID {
		return deny("you cannot change your own account")
	}
	return allow()
}
