package resolver

import (
	"context"
	"errors"
	"fmt"

	"campus-portal/internal/auth"
	"campus-portal/internal/logger"
	"campus-portal/internal/portal"
	"campus-portal/internal/store"
	"campus-portal/internal/utils"
)

// StoreResolver resolves identities against the portal store.
type StoreResolver struct {
	store store.Store
}

func NewStoreResolver(s store.Store) *StoreResolver {
	return &StoreResolver{store: s}
}

func (r *StoreResolver) Resolve(
	ctx context.Context,
	identity *auth.Identity,
) (*portal.User, error) {

	if identity == nil {
		return nil, fmt.Errorf("%w: identity is nil", portal.ErrProfileLoad)
	}

	// 1. Existing profile: resolve is idempotent per identity
	user, err := r.store.UserByIdentity(ctx, identity.Provider, identity.ProviderUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, portal.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", portal.ErrProfileLoad, err)
	}

	// 2. First sign-in: create the profile. The very first user
	// in the system becomes the administrator; everyone after
	// starts as a student.
	count, err := r.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", portal.ErrProfileLoad, err)
	}

	role := portal.RoleStudent
	if count == 0 {
		role = portal.RoleAdmin
	}

	displayName := identity.DisplayName
	if displayName == "" {
		displayName = utils.DisplayTag()
	}

	user = &portal.User{
		Role:        role,
		DisplayName: displayName,
		Email:       identity.Email,
	}

	if err := r.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", portal.ErrProfileLoad, err)
	}

	if err := r.store.LinkIdentity(ctx, user.ID, identity.Provider, identity.ProviderUserID); err != nil {
		return nil, fmt.Errorf("%w: %v", portal.ErrProfileLoad, err)
	}

	logger.Info("profile created", map[string]any{
		"user_id":  user.ID,
		"provider": identity.Provider,
		"role":     user.Role,
	})

	return user, nil
}

func (r *StoreResolver) SwitchRole(
	ctx context.Context,
	actor *portal.User,
	targetUserID string,
	newRole portal.Role,
	newDisplayName string,
) (*portal.User, error) {

	if !newRole.Valid() {
		return nil, fmt.Errorf("%w: role %s", portal.ErrInvalid, newRole)
	}

	if targetUserID == "" {
		targetUserID = actor.ID
	}

	// Switching another user's role is an admin action
	if targetUserID != actor.ID && actor.Role != portal.RoleAdmin {
		return nil, portal.ErrForbidden
	}

	target, err := r.store.UserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	if newDisplayName == "" {
		newDisplayName = target.DisplayName
	}

	if err := r.store.UpdateUser(ctx, target.ID, newRole, newDisplayName); err != nil {
		return nil, err
	}

	logger.Info("role switched", map[string]any{
		"actor_id":  actor.ID,
		"target_id": target.ID,
		"from":      target.Role,
		"to":        newRole,
	})

	target.Role = newRole
	target.DisplayName = newDisplayName
	return target, nil
}
