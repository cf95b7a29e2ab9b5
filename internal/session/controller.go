// Package session owns the in-memory session state and mediates every
// authentication transition. Nothing else in the client mutates the token or
// user; consumers read snapshots and call the controller's operations.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/tapdeck/tapdeck/internal/api"
	"github.com/tapdeck/tapdeck/internal/models"
	"github.com/tapdeck/tapdeck/internal/store"
)

// Store is the persistence the controller needs from the credential store.
type Store interface {
	Credentials() (store.Credential, error)
	SetCredentials(store.Credential) error
	SetUser(user json.RawMessage) error
	Clear() error
}

// AuthAPI is the slice of the request gateway the controller talks to.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.TokenResponse, error)
	SendOTP(ctx context.Context, name, email, password string) error
	VerifyOTP(ctx context.Context, email, otp string) (*api.TokenResponse, error)
	VerifyResetOTP(ctx context.Context, email, otp, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	Google(ctx context.Context, code string) (*api.TokenResponse, error)
	Me(ctx context.Context, tokenOverride string) (*api.Profile, error)
}

// Result is the outcome of a user-initiated auth operation. Operations never
// return errors to their callers; expected failures come back as a Result
// with a display-ready message.
type Result struct {
	// OK reports whether the operation succeeded.
	OK bool
	// Message is shown to the user; set on failure, sometimes on success.
	Message string
	// RequiresOTP is set when the flow must continue with an emailed code.
	RequiresOTP bool
}

func failure(err error) Result {
	return Result{Message: api.Message(err)}
}

func invalid(msg string) Result {
	return Result{Message: msg}
}

// Controller holds the session and is the only writer to it. Construct one at
// program start and pass it to consumers; there is no package-level state.
type Controller struct {
	store Store
	auth  AuthAPI
	log   *zap.Logger

	mu      sync.RWMutex
	token   string
	user    models.UserProfile
	profile json.RawMessage
	loading bool
}

// New builds a controller over the given store and auth API.
func New(st Store, auth AuthAPI, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: st, auth: auth, log: logger}
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Token   string
	User    models.UserProfile
	Profile json.RawMessage
	Loading bool
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Token:   c.token,
		User:    c.user,
		Profile: c.profile,
		Loading: c.loading,
	}
}

// Token returns the in-memory bearer token, "" when unauthenticated.
func (c *Controller) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Authenticated reports whether a session is established.
func (c *Controller) Authenticated() bool { return c.Token() != "" }

// Bootstrap restores the session at program start: read the store, and if a
// token is present, refresh the profile. A refresh that fails for any reason
// other than a rejected token still settles into an authenticated session
// using the stored user; only an explicit 401 clears the credential.
// Bootstrap never returns an error — a broken store means "not logged in".
func (c *Controller) Bootstrap(ctx context.Context) {
	c.setLoading(true)
	defer c.setLoading(false)

	cred, err := c.store.Credentials()
	if err != nil {
		c.log.Warn("reading stored session", zap.Error(err))
		return
	}
	if cred.IsZero() {
		return
	}

	c.mu.Lock()
	c.token = cred.Token
	c.user = models.NewUserProfile(cred.User)
	c.mu.Unlock()

	if err := c.refreshProfile(ctx, ""); err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.IsUnauthorized() {
			c.log.Info("stored token rejected by backend, clearing session")
			c.Logout()
			return
		}
		// Stale profile is acceptable; the stored user carries the session.
		c.log.Warn("profile refresh failed during bootstrap", zap.Error(err))
	}
}

// Login establishes a session from an email/password pair.
func (c *Controller) Login(ctx context.Context, email, password string) Result {
	if email == "" || password == "" {
		return invalid("email and password are required")
	}
	resp, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return failure(err)
	}
	return c.establish(ctx, resp)
}

// Register asks the backend to send a registration OTP. No session is created
// here; the flow continues with VerifyOTPAndLogin.
func (c *Controller) Register(ctx context.Context, name, email, password string) Result {
	if name == "" || email == "" || password == "" {
		return invalid("name, email and password are required")
	}
	if err := c.auth.SendOTP(ctx, name, email, password); err != nil {
		return failure(err)
	}
	return Result{OK: true, RequiresOTP: true, Message: "verification code sent to " + email}
}

// ResendOTP re-sends the registration code.
func (c *Controller) ResendOTP(ctx context.Context, email string) Result {
	if email == "" {
		return invalid("email is required")
	}
	if err := c.auth.SendOTP(ctx, "", email, ""); err != nil {
		return failure(err)
	}
	return Result{OK: true, RequiresOTP: true, Message: "verification code sent to " + email}
}

// VerifyOTPAndLogin exchanges an emailed code for a session, completing
// registration. Same persistence and refresh contract as Login.
func (c *Controller) VerifyOTPAndLogin(ctx context.Context, email, otp string) Result {
	if email == "" || otp == "" {
		return invalid("email and code are required")
	}
	resp, err := c.auth.VerifyOTP(ctx, email, otp)
	if err != nil {
		return failure(err)
	}
	return c.establish(ctx, resp)
}

// GoogleLogin exchanges a third-party auth code for a session. Same contract
// as Login.
func (c *Controller) GoogleLogin(ctx context.Context, code string) Result {
	if code == "" {
		return invalid("auth code is required")
	}
	resp, err := c.auth.Google(ctx, code)
	if err != nil {
		return failure(err)
	}
	return c.establish(ctx, resp)
}

// ForgotPassword starts a password reset.
func (c *Controller) ForgotPassword(ctx context.Context, email string) Result {
	if email == "" {
		return invalid("email is required")
	}
	if err := c.auth.ForgotPassword(ctx, email); err != nil {
		return failure(err)
	}
	return Result{OK: true, RequiresOTP: true, Message: "reset code sent to " + email}
}

// ResetPassword completes a password reset with the emailed code. It does not
// establish a session; the user logs in with the new password.
func (c *Controller) ResetPassword(ctx context.Context, email, otp, newPassword string) Result {
	if email == "" || otp == "" || newPassword == "" {
		return invalid("email, code and new password are required")
	}
	if err := c.auth.VerifyResetOTP(ctx, email, otp, newPassword); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: "password updated"}
}

// establish persists a fresh credential pair, publishes it to memory, then
// refreshes the profile best-effort. Persistence happens before the refresh
// so the gateway reads the new token from the store.
func (c *Controller) establish(ctx context.Context, resp *api.TokenResponse) Result {
	if resp.Token == "" {
		return invalid("backend returned no token")
	}
	if err := c.store.SetCredentials(store.Credential{Token: resp.Token, User: resp.User}); err != nil {
		// The session still works for this process; it just won't survive a
		// restart.
		c.log.Warn("persisting session", zap.Error(err))
	}

	c.mu.Lock()
	c.token = resp.Token
	c.user = models.NewUserProfile(resp.User)
	c.profile = nil
	c.mu.Unlock()

	if err := c.refreshProfile(ctx, ""); err != nil {
		c.log.Debug("profile refresh after login failed", zap.Error(err))
	}
	return Result{OK: true}
}

// Logout clears the session from memory and disk. It always succeeds from the
// caller's perspective; a store failure is logged, not surfaced.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.token = ""
	c.user = models.UserProfile{}
	c.profile = nil
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.log.Warn("clearing stored session", zap.Error(err))
	}
}

// UpdateUser replaces the user object in memory and on disk without touching
// the token. Persistence is fire-and-forget; a failure is logged only.
func (c *Controller) UpdateUser(user json.RawMessage) {
	c.mu.Lock()
	c.user = models.NewUserProfile(user)
	c.mu.Unlock()

	if err := c.store.SetUser(user); err != nil {
		c.log.Warn("persisting updated user", zap.Error(err))
	}
}

// FetchProfile refreshes the extended profile bundle. With no token present
// it is a no-op. Failures are logged, never surfaced: the refresh is always a
// best-effort layer on top of already-valid session state, and a failed
// attempt leaves the existing profile untouched.
func (c *Controller) FetchProfile(ctx context.Context, tokenOverride string) {
	if tokenOverride == "" && !c.Authenticated() {
		return
	}
	if err := c.refreshProfile(ctx, tokenOverride); err != nil {
		c.log.Debug("profile refresh failed", zap.Error(err))
	}
}

func (c *Controller) refreshProfile(ctx context.Context, tokenOverride string) error {
	p, err := c.auth.Me(ctx, tokenOverride)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.profile = p.Bundle
	if len(p.User) > 0 && string(p.User) != "null" {
		c.user = models.NewUserProfile(p.User)
	}
	c.mu.Unlock()

	if len(p.User) > 0 && string(p.User) != "null" {
		if err := c.store.SetUser(p.User); err != nil {
			c.log.Warn("persisting refreshed user", zap.Error(err))
		}
	}
	return nil
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}
