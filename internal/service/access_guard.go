package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Denial reasons reported by the access guard.
const (
	DenyUnauthenticated = "unauthenticated"
	DenyRoleMismatch    = "role_mismatch"
	DenySystemError     = "system_error"
)

// Decision is the outcome of an authorization check. The transport layer
// translates it into a response; the guard never performs control flow itself.
type Decision struct {
	Allowed bool
	Reason  string
	Message string
}

// Allowed is the positive decision.
func Allowed() Decision {
	return Decision{Allowed: true}
}

// Denied builds a negative decision with a reason and user-facing message.
func Denied(reason, message string) Decision {
	return Decision{Reason: reason, Message: message}
}

// AccessGuard authorizes operations against a single required role.
type AccessGuard struct {
	roles  RoleResolver
	logger zerolog.Logger
}

// NewAccessGuard constructs the guard.
func NewAccessGuard(roles RoleResolver, logger zerolog.Logger) *AccessGuard {
	return &AccessGuard{
		roles:  roles,
		logger: logger.With().Str("component", "access_guard").Logger(),
	}
}

// Authorize permits the operation only when the resolved role matches the
// required role exactly. Unresolvable identity denies as unauthenticated;
// resolution failures deny as system errors. The guard fails closed.
func (g *AccessGuard) Authorize(ctx context.Context, userID, requiredRole string) Decision {
	if userID == "" {
		return Denied(DenyUnauthenticated, "authentication required")
	}

	role, err := g.roles.Lookup(ctx, userID)
	if err != nil {
		g.logger.Error().Err(err).Str("user_id", userID).Msg("role resolution failed")
		return Denied(DenySystemError, "could not verify access level")
	}

	if role != requiredRole {
		return Denied(DenyRoleMismatch, fmt.Sprintf("access denied: %s role required", requiredRole))
	}

	return Allowed()
}
