// ABOUTME: Token manager issues the shared Spotify access token via client credentials
// ABOUTME: Serves the stored token while fresh and refreshes it through the accounts API

package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/stevedylandev/wholenote-server/core/domain"
	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

const (
	// DefaultTokenURL is the Spotify accounts token endpoint
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	accountsAPI = "spotify-accounts"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenManager hands out the shared access token
type TokenManager struct {
	deps     interfaces.Dependencies
	tokenURL string
	now      func() time.Time
}

// NewTokenManager creates a token manager. An empty tokenURL selects DefaultTokenURL.
func NewTokenManager(deps interfaces.Dependencies, tokenURL string) *TokenManager {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return &TokenManager{
		deps:     deps,
		tokenURL: tokenURL,
		now:      time.Now,
	}
}

// SetClock replaces the time source
func (m *TokenManager) SetClock(now func() time.Time) {
	m.now = now
}

// GetToken returns a usable token, refreshing it when the stored one is missing
// or expired. Concurrent refreshes are not coordinated; the last write wins.
func (m *TokenManager) GetToken(ctx context.Context, clientID, clientSecret string, store interfaces.CredentialStore) (string, error) {
	stored, err := store.Read(ctx)
	if err != nil {
		m.deps.Logger.Error("Failed to read stored credential", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}

	if cred, ok := stored.Get(); ok && cred.IsUsable(m.now()) {
		m.deps.Logger.Debug("Using stored access token", map[string]interface{}{
			"expires_at": cred.ExpiresAt,
		})
		return cred.Token, nil
	}

	m.deps.Logger.Info("Requesting new access token", map[string]interface{}{
		"token_url": m.tokenURL,
	})

	requestedAt := m.now()
	token, err := m.requestToken(ctx, clientID, clientSecret)
	if err != nil {
		m.deps.Logger.Error("Access token request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}

	cred := domain.CachedCredential{
		Token:     token.AccessToken,
		ExpiresAt: requestedAt.Add(time.Duration(token.ExpiresIn) * time.Second),
	}
	if err := store.Write(ctx, cred); err != nil {
		m.deps.Logger.Error("Failed to store access token", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}

	m.deps.Logger.Info("Stored new access token", map[string]interface{}{
		"expires_at": cred.ExpiresAt,
	})
	return cred.Token, nil
}

func (m *TokenManager) requestToken(ctx context.Context, clientID, clientSecret string) (*tokenResponse, error) {
	if m.deps.HTTPClient == nil {
		return nil, &coreerrors.ExternalAPIError{API: accountsAPI, Message: "HTTP client not configured"}
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	headers := map[string]string{
		"Content-Type":  "application/x-www-form-urlencoded",
		"Authorization": "Basic " + basicCredentials(clientID, clientSecret),
	}

	resp, err := m.deps.HTTPClient.Post(ctx, m.tokenURL, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: accountsAPI, Message: "request failed", Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API: accountsAPI, StatusCode: resp.StatusCode(), Message: "failed to read response", Err: err,
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			API:        accountsAPI,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("token request rejected: %s", truncate(string(body), 200)),
		}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API: accountsAPI, StatusCode: resp.StatusCode(), Message: "invalid token response", Err: err,
		}
	}
	if token.AccessToken == "" {
		return nil, &coreerrors.ExternalAPIError{
			API: accountsAPI, StatusCode: resp.StatusCode(), Message: "token response has no access_token",
		}
	}

	return &token, nil
}

func basicCredentials(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
