// ABOUTME: CachedCredential is the single shared bearer token and its expiry
// ABOUTME: Serialized as {"token": string, "expires": epoch milliseconds}

package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// CachedCredential is the stored upstream access token
type CachedCredential struct {
	Token     string
	ExpiresAt time.Time
}

type credentialJSON struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"`
}

// IsUsable reports whether the credential can still be presented at now.
// A credential expiring exactly at now is not usable.
func (c CachedCredential) IsUsable(now time.Time) bool {
	return c.Token != "" && now.Before(c.ExpiresAt)
}

// MarshalJSON implements json.Marshaler
func (c CachedCredential) MarshalJSON() ([]byte, error) {
	return json.Marshal(credentialJSON{
		Token:   c.Token,
		Expires: c.ExpiresAt.UnixMilli(),
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *CachedCredential) UnmarshalJSON(data []byte) error {
	var raw credentialJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Token == "" {
		return errors.New("credential token is empty")
	}

	c.Token = raw.Token
	c.ExpiresAt = time.UnixMilli(raw.Expires)
	return nil
}
