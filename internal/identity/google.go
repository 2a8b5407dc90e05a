package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"drivehub/internal/domain/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleProvider implements Provider against Google's OAuth endpoints.
type GoogleProvider struct {
	config *oauth2.Config
	logger *slog.Logger
}

// NewGoogleProvider builds an identity provider from OAuth client
// credentials.
func NewGoogleProvider(clientID, clientSecret, redirectURL string, logger *slog.Logger) (*GoogleProvider, error) {
	if clientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID is not configured")
	}
	if clientSecret == "" {
		return nil, errors.New("GOOGLE_CLIENT_SECRET is not configured")
	}

	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		logger: logger,
	}, nil
}

// AuthURL returns the consent-screen URL.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange swaps the authorization code for tokens and retrieves the
// user's profile.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*models.UserInfo, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx,
		option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}

	p.logger.Info("user authenticated", "email", info.Email)

	return &models.UserInfo{
		ID:            info.Id,
		Email:         info.Email,
		Name:          info.Name,
		Picture:       info.Picture,
		VerifiedEmail: info.VerifiedEmail != nil && *info.VerifiedEmail,
	}, nil
}

// DomainAllowed reports whether the email's domain is in the allow-list.
// An empty list allows every domain.
func DomainAllowed(email string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	for _, d := range allowed {
		if strings.EqualFold(d, domain) {
			return true
		}
	}
	return false
}
