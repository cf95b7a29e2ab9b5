package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_RoundTripUnchanged(t *testing.T) {
	// Fields the client knows nothing about must survive a store-and-restore
	// cycle byte-for-byte at the JSON level.
	raw := []byte(`{"name":"Ada","email":"ada@example.com","avatar":{"url":"https://x/y.png"},"flags":[1,2,3]}`)

	var p UserProfile
	require.NoError(t, json.Unmarshal(raw, &p))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))

	// And again, to prove idempotence.
	var p2 UserProfile
	require.NoError(t, json.Unmarshal(out, &p2))
	out2, err := json.Marshal(p2)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out2))
}

func TestUserProfile_FieldAccess(t *testing.T) {
	p := NewUserProfile([]byte(`{"name":"Ada","email":"ada@example.com","role":"owner","age":42}`))

	assert.Equal(t, "Ada", p.Name())
	assert.Equal(t, "ada@example.com", p.Email())
	assert.Equal(t, "owner", p.Role())
	assert.Equal(t, "", p.StringField("missing"))
	assert.Equal(t, "", p.StringField("age"), "non-string fields read as empty")
}

func TestUserProfile_Zero(t *testing.T) {
	var p UserProfile
	assert.True(t, p.IsZero())
	assert.Equal(t, "", p.Name())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	assert.True(t, NewUserProfile([]byte("null")).IsZero())
	assert.False(t, NewUserProfile([]byte(`{"name":"x"}`)).IsZero())
}

func TestLeadStatusValues(t *testing.T) {
	assert.Equal(t, LeadStatus("new"), LeadNew)
	assert.Equal(t, LeadStatus("contacted"), LeadContacted)
	assert.Equal(t, LeadStatus("closed"), LeadClosed)
}
