package tweet

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the server-assigned message identifier. The wire form may be a
// JSON string or a number; the client only ever echoes it back.
type ID string

// String returns the identifier as it appears in request paths.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("tweet id: expected string or number, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Message is a single record as returned by GET /tweets.
type Message struct {
	ID      ID     `json:"id"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// CreateRequest is the body of POST /tweet.
type CreateRequest struct {
	Message string `json:"message" binding:"required"`
}
