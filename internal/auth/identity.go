package auth

// Identity is a normalized external authentication identity.
// Providers return facts only; user creation, linking and role
// decisions happen in the resolver.
type Identity struct {
	Provider       string // e.g. "password", "anonymous", "google"
	ProviderUserID string // provider-scoped stable user identifier
	Email          string // optional; empty for anonymous identities
	DisplayName    string // optional; synthesized downstream when empty
}
