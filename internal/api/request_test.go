package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripperFunc lets a test stand in for the transport.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(tokens TokenSource, fn roundTripperFunc) *Client {
	return NewClient("http://example.com", tokens, WithHTTPClient(&http.Client{
		Transport: fn,
		Timeout:   time.Second,
	}))
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestDoRequest_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(StaticToken("tok-123"), func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		return jsonResponse(200, `{}`), nil
	})

	err := c.get(context.Background(), "/auth/me", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDoRequest_OmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	c := newTestClient(StaticToken(""), func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		_, hasHeader = req.Header["Authorization"]
		return jsonResponse(200, `{}`), nil
	})

	err := c.post(context.Background(), "/auth/login", map[string]string{"email": "a"}, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, hasHeader)
}

func TestDoRequest_TokenReadPerRequest(t *testing.T) {
	// The TokenSource is consulted for every request, so a rotation between
	// two calls is honored without touching the client.
	current := "first"
	source := tokenFunc(func() string { return current })

	var seen []string
	c := newTestClient(source, func(req *http.Request) (*http.Response, error) {
		seen = append(seen, req.Header.Get("Authorization"))
		return jsonResponse(200, `{}`), nil
	})

	require.NoError(t, c.get(context.Background(), "/auth/me", nil, nil))
	current = "second"
	require.NoError(t, c.get(context.Background(), "/auth/me", nil, nil))

	assert.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

func TestDoRequest_TokenOverrideWins(t *testing.T) {
	var gotAuth string
	c := newTestClient(StaticToken("stored"), func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		return jsonResponse(200, `{}`), nil
	})

	err := c.doRequest(context.Background(), "GET", "/auth/me", nil, nil, nil, "override")
	require.NoError(t, err)
	assert.Equal(t, "Bearer override", gotAuth)
}

func TestDoRequest_SetsRequestID(t *testing.T) {
	ids := map[string]bool{}
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		id := req.Header.Get("X-Request-Id")
		assert.NotEmpty(t, id)
		ids[id] = true
		return jsonResponse(200, `{}`), nil
	})

	require.NoError(t, c.get(context.Background(), "/a", nil, nil))
	require.NoError(t, c.get(context.Background(), "/a", nil, nil))
	assert.Len(t, ids, 2, "request ids must be unique per request")
}

func TestDoRequest_BackendMessagePreferred(t *testing.T) {
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(401, `{"message":"invalid credentials"}`), nil
	})

	err := c.post(context.Background(), "/auth/login", map[string]string{}, nil)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.True(t, apiErr.IsUnauthorized())
}

func TestDoRequest_ErrorFieldFallback(t *testing.T) {
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(422, `{"error":"email taken"}`), nil
	})

	err := c.post(context.Background(), "/auth/send-otp", map[string]string{}, nil)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "email taken", apiErr.Message)
}

func TestDoRequest_PlainBodyFallback(t *testing.T) {
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(500, "something broke\n"), nil
	})

	err := c.get(context.Background(), "/business-cards", nil, nil)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "something broke", apiErr.Message)
}

func TestDoRequest_EmptyBodyFallsBackToStatusText(t *testing.T) {
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(503, ""), nil
	})

	err := c.get(context.Background(), "/business-cards", nil, nil)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Service Unavailable", apiErr.Message)
}

func TestDoRequest_TransportError(t *testing.T) {
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})

	err := c.get(context.Background(), "/auth/me", nil, nil)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Zero(t, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "network down")
}

func TestDoRequest_ContextCancellation(t *testing.T) {
	c := newTestClient(nil, func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.get(ctx, "/leads/my-leads", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

func TestMessage_UnwrapsAPIError(t *testing.T) {
	assert.Equal(t, "nope", Message(&Error{StatusCode: 400, Message: "nope"}))
	assert.Equal(t, "plain failure", Message(errors.New("plain failure")))
}
