package resolver

import (
	"context"

	"campus-portal/internal/auth"
	"campus-portal/internal/portal"
)

// Resolver turns an authenticated external identity into a portal
// user profile. It is the ONLY place where identity-to-user
// mapping and default-role decisions live.
type Resolver interface {
	Resolve(ctx context.Context, identity *auth.Identity) (*portal.User, error)

	// SwitchRole overwrites role and display name on an existing
	// profile. A user may switch themself; changing anyone else
	// requires admin.
	SwitchRole(
		ctx context.Context,
		actor *portal.User,
		targetUserID string,
		newRole portal.Role,
		newDisplayName string,
	) (*portal.User, error)
}
