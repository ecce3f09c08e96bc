// ABOUTME: token command reports on the shared Spotify credential
// ABOUTME: Refreshes it through the token manager when it is missing or expired

package main

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/stevedylandev/wholenote-server/pkg/config"
)

// tokenStatus is printed by the token command. The token itself is never shown.
type tokenStatus struct {
	Key       string     `json:"key"`
	Cached    bool       `json:"cached"`
	Usable    bool       `json:"usable"`
	Refreshed bool       `json:"refreshed"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show the stored Spotify credential, refreshing it if needed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, validateTokenConfig)
		if err != nil {
			return err
		}
		defer a.Close()

		status := tokenStatus{Key: a.store.Key()}

		before, err := a.store.Read(ctx)
		if err != nil {
			return err
		}
		if cred, ok := before.Get(); ok {
			status.Cached = true
			status.Usable = cred.IsUsable(time.Now())
		}

		if _, err := a.tokens.GetToken(ctx, a.cfg.Spotify.ClientID, a.cfg.Spotify.ClientSecret, a.store); err != nil {
			return err
		}

		after, err := a.store.Read(ctx)
		if err != nil {
			return err
		}
		if cred, ok := after.Get(); ok {
			expires := cred.ExpiresAt
			status.ExpiresAt = &expires
			status.Refreshed = !status.Usable
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	},
}

func validateTokenConfig(cfg *config.Config) error {
	if err := cfg.ValidateCache(); err != nil {
		return err
	}
	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
	}
	return nil
}
