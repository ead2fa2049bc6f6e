package password

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campus-portal/internal/auth"
	"campus-portal/internal/portal"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("credentials already exist")
)

const providerName = "password"

// CredentialStore persists password hashes keyed by lower-cased
// email. Lookups must not reveal whether an email is registered.
type CredentialStore interface {
	// Save stores the hash, failing with ErrAlreadyRegistered on
	// a duplicate email.
	Save(ctx context.Context, email, hash string) error
	// Hash returns the stored hash or ErrInvalidCredentials.
	Hash(ctx context.Context, email string) (string, error)
}

// Service is the canonical identity provider: email/password
// sign-up and sign-in. Like every provider it emits identity
// facts only; profile creation happens in the resolver.
type Service struct {
	creds CredentialStore
}

func NewService(creds CredentialStore) *Service {
	return &Service{creds: creds}
}

// Register creates credentials for a new email and returns the
// resulting identity. The email doubles as the provider-scoped
// stable user identifier.
func (s *Service) Register(
	ctx context.Context,
	email string,
	password string,
) (*auth.Identity, error) {

	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email required", portal.ErrInvalid)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	if err := s.creds.Save(ctx, email, hash); err != nil {
		return nil, err
	}

	return s.identity(email), nil
}

// Authenticate verifies an email/password pair. Failures collapse
// into ErrInvalidCredentials so the response never reveals whether
// an account exists.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*auth.Identity, error) {

	email = normalizeEmail(email)

	hash, err := s.creds.Hash(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(hash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.identity(email), nil
}

func (s *Service) identity(email string) *auth.Identity {
	return &auth.Identity{
		Provider:       providerName,
		ProviderUserID: email,
		Email:          email,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
