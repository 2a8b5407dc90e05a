// Package identity integrates the external identity provider. The rest
// of the service consumes it as an opaque capability: build a consent
// URL, then turn an authorization code into a user identity.
package identity

import (
	"context"

	"drivehub/internal/domain/models"
)

// Provider abstracts the OAuth identity provider.
type Provider interface {
	// AuthURL returns the consent-screen URL for the given opaque state.
	AuthURL(state string) string

	// Exchange swaps an authorization code for the authenticated user's
	// identity.
	Exchange(ctx context.Context, code string) (*models.UserInfo, error)
}
