package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONRoundTripPreservesProfile(t *testing.T) {
	raw := []byte(`{"id": 3, "name": "Alice", "email": "alice@example.com", "newsletter": true, "loyaltyPoints": 120}`)

	var user User
	require.NoError(t, json.Unmarshal(raw, &user))

	assert.Equal(t, 3, user.ID)
	assert.Equal(t, "Alice", user.Profile["name"])
	assert.Equal(t, true, user.Profile["newsletter"])
	assert.Equal(t, float64(120), user.Profile["loyaltyPoints"])

	out, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, float64(3), decoded["id"])
	assert.Equal(t, "Alice", decoded["name"])
	assert.Equal(t, "alice@example.com", decoded["email"])
	assert.Equal(t, true, decoded["newsletter"])
}

func TestUserUnmarshalWithoutID(t *testing.T) {
	var user User
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Ghost"}`), &user))

	assert.Equal(t, 0, user.ID)
	assert.Equal(t, "Ghost", user.Profile["name"])
}

func TestOrderValidationErrorMessage(t *testing.T) {
	err := &OrderValidationError{Message: "Not enough stock for Mouse"}
	assert.Equal(t, "Not enough stock for Mouse", err.Error())
}
