package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	apperrors "github.com/setlistify/setlistify/internal/errors"
)

// Spotify accounts service endpoints.
const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// SpotifyClientOptions configures the acquisition client.
type SpotifyClientOptions struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// Scopes is the space-separated scope string requested on the
	// authorization-code flow.
	Scopes string
	// Timeout bounds every outbound call to the accounts service.
	Timeout time.Duration
	// AuthURL and TokenURL override the production endpoints. Tests only.
	AuthURL  string
	TokenURL string
}

// spotifyClient acquires tokens from the Spotify accounts service. It performs
// exactly one HTTP attempt per call and reports upstream failures as-is; it
// never retries and never caches.
type spotifyClient struct {
	oauth   oauth2.Config
	cc      clientcredentials.Config
	timeout time.Duration
}

// NewSpotifyClient creates an Exchanger backed by the Spotify accounts service.
func NewSpotifyClient(opts SpotifyClientOptions) Exchanger {
	authURL := opts.AuthURL
	if authURL == "" {
		authURL = spotifyAuthURL
	}
	tokenURL := opts.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyTokenURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &spotifyClient{
		oauth: oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURI,
			Scopes:       strings.Fields(opts.Scopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		cc: clientcredentials.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		timeout: timeout,
	}
}

// AuthCodeURL builds the provider authorization URL. The state parameter
// carries the serialized redirect destination, not a CSRF nonce: the flow's
// integrity rests on the authorization code itself.
func (s *spotifyClient) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// ExchangeCode swaps a one-time authorization code for a user token pair.
func (s *spotifyClient) ExchangeCode(ctx context.Context, code string) (*authDomain.TokenPair, error) {
	ctx, cancel := s.boundContext(ctx)
	defer cancel()

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, upstreamError(err, "authorization code exchange failed")
	}

	pair := &authDomain.TokenPair{
		Access: authDomain.BearerToken{
			Value:     tok.AccessToken,
			ExpiresAt: tok.Expiry.UTC(),
			Scopes:    s.oauth.Scopes,
		},
		Refresh: tok.RefreshToken,
	}
	return pair, nil
}

// ClientCredentialsToken obtains a service-scoped token. No scopes are
// requested: the client-credentials grant authorizes catalog reads only.
func (s *spotifyClient) ClientCredentialsToken(ctx context.Context) (*authDomain.BearerToken, error) {
	ctx, cancel := s.boundContext(ctx)
	defer cancel()

	tok, err := s.cc.Token(ctx)
	if err != nil {
		return nil, upstreamError(err, "client credentials grant failed")
	}

	return &authDomain.BearerToken{
		Value:     tok.AccessToken,
		ExpiresAt: tok.Expiry.UTC(),
	}, nil
}

func (s *spotifyClient) boundContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: s.timeout})
	return context.WithTimeout(ctx, s.timeout)
}

// upstreamError maps a token-endpoint failure to the upstream sentinel. The
// provider's error detail is preserved for logs but never reaches clients.
func upstreamError(err error, msg string) error {
	var retrieveErr *oauth2.RetrieveError
	if apperrors.As(err, &retrieveErr) {
		return apperrors.Wrap(apperrors.ErrUpstream, msg+": "+retrieveErr.Error())
	}
	return apperrors.Wrap(apperrors.ErrUpstream, msg+": "+err.Error())
}
