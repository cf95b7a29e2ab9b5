package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapdeck/tapdeck/internal/models"
)

func TestRoute_Derivation(t *testing.T) {
	user := models.NewUserProfile([]byte(`{"name":"Ada"}`))

	tests := []struct {
		name string
		snap Snapshot
		want Route
	}{
		{"loading wins over token", Snapshot{Loading: true, Token: "tok"}, RouteLoading},
		{"loading with nothing", Snapshot{Loading: true}, RouteLoading},
		{"token without user is still app", Snapshot{Token: "tok"}, RouteApp},
		{"token with user", Snapshot{Token: "tok", User: user}, RouteApp},
		{"user without token is entry", Snapshot{User: user}, RouteEntry},
		{"empty", Snapshot{}, RouteEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.Route())
		})
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "loading", RouteLoading.String())
	assert.Equal(t, "app", RouteApp.String())
	assert.Equal(t, "entry", RouteEntry.String())
	assert.Equal(t, "unknown", Route(42).String())
}
