package tweet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageDecodesStringAndNumericIDs(t *testing.T) {
	payload := `[
		{"id": "7f3c", "message": "a", "date": "2024-01-01T00:00:00Z"},
		{"id": 42, "message": "b", "date": "2024-01-02T00:00:00Z"}
	]`

	var msgs []Message
	require.NoError(t, json.Unmarshal([]byte(payload), &msgs))
	require.Len(t, msgs, 2)
	require.Equal(t, ID("7f3c"), msgs[0].ID)
	require.Equal(t, ID("42"), msgs[1].ID)
}

func TestMessageRejectsObjectID(t *testing.T) {
	var msg Message
	err := json.Unmarshal([]byte(`{"id": {"x": 1}, "message": "a"}`), &msg)
	require.Error(t, err)
}
