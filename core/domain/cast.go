// ABOUTME: Cast domain model wraps an opaque upstream feed record
// ABOUTME: Only hash and timestamp are decoded; the original JSON is re-emitted unchanged

package domain

import (
	"encoding/json"
	"errors"
	"time"

	timeutil "github.com/stevedylandev/wholenote-server/pkg/utils/time"
)

// Cast is a single item returned by the social feed API.
// Timestamp is zero when the upstream value is missing or unparseable.
type Cast struct {
	Hash      string
	Timestamp time.Time
	Raw       json.RawMessage
}

type castFields struct {
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

// UnmarshalJSON keeps the raw record and decodes the fields used for ordering
func (c *Cast) UnmarshalJSON(data []byte) error {
	var fields castFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	c.Hash = fields.Hash
	c.Timestamp = timeutil.ParseFlexibleTime(fields.Timestamp)
	c.Raw = append(c.Raw[:0], data...)
	return nil
}

// MarshalJSON emits the record exactly as it was received
func (c Cast) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		return nil, errors.New("cast has no raw payload")
	}
	return c.Raw, nil
}

// NewerThan reports whether c sorts before other in a newest-first listing.
// Casts without a timestamp sort after every cast that has one.
func (c Cast) NewerThan(other Cast) bool {
	if c.Timestamp.IsZero() {
		return false
	}
	if other.Timestamp.IsZero() {
		return true
	}
	return c.Timestamp.After(other.Timestamp)
}

// FeedPage is one merged page of casts plus the cursor for the next page
type FeedPage struct {
	Casts      []Cast
	NextCursor string
}

type feedPageNext struct {
	Cursor string `json:"cursor"`
}

type feedPageJSON struct {
	Casts []Cast        `json:"casts"`
	Next  *feedPageNext `json:"next,omitempty"`
}

// MarshalJSON renders {"casts": [...], "next": {"cursor": "..."}} and omits next without a cursor
func (p FeedPage) MarshalJSON() ([]byte, error) {
	out := feedPageJSON{Casts: p.Casts}
	if out.Casts == nil {
		out.Casts = []Cast{}
	}
	if p.NextCursor != "" {
		out.Next = &feedPageNext{Cursor: p.NextCursor}
	}
	return json.Marshal(out)
}
