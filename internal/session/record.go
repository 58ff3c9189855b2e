// Package session implements the token lifecycle: issuing session records
// into a TTL key-value store and resolving bearer tokens back to identity.
package session

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is the session payload stored under a token key. It is created at
// login and never mutated; the store's TTL reaps it. Expires mirrors the
// store TTL and is informational only — if the two ever disagree, the
// store wins.
type Record struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Expires  time.Time `json:"expires"`
}

// EncodeRecord serializes a record for storage.
func EncodeRecord(r *Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("session: failed to encode record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses a stored value back into a record. A value missing
// required fields is a decode error, not a partially-filled record.
func DecodeRecord(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("session: failed to decode record: %w", err)
	}
	if r.Username == "" || r.Email == "" || r.FullName == "" || r.Expires.IsZero() {
		return nil, fmt.Errorf("session: stored record is missing required fields")
	}
	return &r, nil
}
