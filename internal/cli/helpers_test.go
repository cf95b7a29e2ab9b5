package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapdeck/tapdeck/internal/session"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcde", 5))
	assert.Equal(t, "abcde…", truncate("abcdef", 5))
}

func TestAck(t *testing.T) {
	assert.NoError(t, ack(session.Result{OK: true}))
	assert.NoError(t, ack(session.Result{OK: true, Message: "code sent"}))

	err := ack(session.Result{Message: "invalid credentials"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "", greeting(""))
	assert.Equal(t, ", Ada", greeting("Ada"))
}
