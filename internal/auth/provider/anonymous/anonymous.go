package anonymous

import (
	"github.com/google/uuid"

	"campus-portal/internal/auth"
)

const providerName = "anonymous"

// NewIdentity mints a fresh anonymous identity. Every call is a
// new account; the resolver synthesizes a display name for it.
func NewIdentity() *auth.Identity {
	return &auth.Identity{
		Provider:       providerName,
		ProviderUserID: uuid.NewString(),
	}
}
