package irp

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	httpclient "gstdesk-api/internal/client/http"
	"gstdesk-api/internal/logger"

	"go.uber.org/zap"
)

// tokenSafetyMargin is subtracted from the gateway's expiry so we never
// present a token that dies mid-request.
const tokenSafetyMargin = 60 * time.Second

// Authenticator caches the IRP access token and refreshes it lazily when a
// caller asks for a token after expiry. Safe for concurrent use.
type Authenticator struct {
	config     Config
	httpClient *httpclient.HTTPClient

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time
}

// NewAuthenticator creates an Authenticator backed by the given HTTP client
func NewAuthenticator(config Config, client *httpclient.HTTPClient) *Authenticator {
	return &Authenticator{
		config:     config,
		httpClient: client,
		now:        time.Now,
	}
}

// Token returns a valid access token, exchanging credentials with the
// gateway if the cached one is missing or expired. A failed exchange leaves
// any previously cached token untouched.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && a.now().Before(a.expiresAt) {
		return a.accessToken, nil
	}

	req := authRequest{
		ClientID:     a.config.ClientID,
		ClientSecret: a.config.ClientSecret,
		Username:     a.config.Username,
		Password:     a.config.Password,
		GrantType:    "password",
	}

	resp, err := a.httpClient.Post(ctx, "/auth/token", req)
	if err != nil {
		if httpErr, ok := err.(*httpclient.HTTPError); ok {
			msg := httpErr.Status
			var body errorBody
			if jsonErr := json.Unmarshal([]byte(httpErr.Body), &body); jsonErr == nil && body.Message != "" {
				msg = body.Message
			}
			if resp != nil && resp.Body != nil {
				resp.Body.Close()
			}
			return "", &AuthError{Message: msg, Err: err}
		}
		return "", &UnavailableError{Message: "token exchange failed", Err: err}
	}

	var tokenResp authResponse
	if err := a.httpClient.ProcessJSONResponse(resp, &tokenResp); err != nil {
		return "", &UnavailableError{Message: "malformed token response", Err: err}
	}
	if tokenResp.AccessToken == "" {
		return "", &AuthError{Message: "token response missing access_token"}
	}

	a.accessToken = tokenResp.AccessToken
	a.expiresAt = a.now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenSafetyMargin)

	logger.Debug("obtained IRP access token",
		zap.Time("expires_at", a.expiresAt))

	return a.accessToken, nil
}

// Invalidate drops the cached token so the next Token call re-authenticates
func (a *Authenticator) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accessToken = ""
	a.expiresAt = time.Time{}
}
