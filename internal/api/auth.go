package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthService handles authentication and profile endpoints.
type AuthService struct {
	client *Client
}

// TokenResponse is the credential pair issued on a successful login, OTP
// verification, or third-party exchange. User is kept verbatim; its shape
// belongs to the backend.
type TokenResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Profile is the extended profile bundle from GET /auth/me. The whole
// response body is retained as Bundle; User is the embedded user object when
// the backend wraps it in an envelope, or the body itself when it does not.
type Profile struct {
	User   json.RawMessage
	Bundle json.RawMessage
}

// UnmarshalJSON keeps the full body and pulls out the user object if the
// response is an envelope.
func (p *Profile) UnmarshalJSON(data []byte) error {
	p.Bundle = append(p.Bundle[:0], data...)
	var env struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &env); err == nil && len(env.User) > 0 && string(env.User) != "null" {
		p.User = env.User
		return nil
	}
	p.User = p.Bundle
	return nil
}

// Login exchanges an email/password pair for a token and user object.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp TokenResponse
	if err := s.client.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendOTP starts registration (or re-sends the code) by asking the backend to
// mail a one-time passcode. No session is created; the credential pair is
// only issued by VerifyOTP.
func (s *AuthService) SendOTP(ctx context.Context, name, email, password string) error {
	body := map[string]string{"email": email}
	if name != "" {
		body["name"] = name
	}
	if password != "" {
		body["password"] = password
	}
	return s.client.post(ctx, "/auth/send-otp", body, nil)
}

// VerifyOTP exchanges an emailed one-time passcode for a token and user
// object, completing registration.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "otp": otp}
	var resp TokenResponse
	if err := s.client.post(ctx, "/auth/verify-otp", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyResetOTP completes a password reset with the emailed passcode.
func (s *AuthService) VerifyResetOTP(ctx context.Context, email, otp, newPassword string) error {
	body := map[string]string{"email": email, "otp": otp, "password": newPassword}
	return s.client.post(ctx, "/auth/verify-reset-otp", body, nil)
}

// ForgotPassword asks the backend to start a password reset for email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.post(ctx, "/auth/forgot-password", body, nil)
}

// Google exchanges a third-party auth code for a token and user object.
// Structurally the same credential path as Login.
func (s *AuthService) Google(ctx context.Context, code string) (*TokenResponse, error) {
	body := map[string]string{"code": code}
	var resp TokenResponse
	if err := s.client.post(ctx, "/auth/google", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the extended profile bundle. tokenOverride, when non-empty, is
// used instead of the stored token; pass "" for the normal path.
func (s *AuthService) Me(ctx context.Context, tokenOverride string) (*Profile, error) {
	var p Profile
	if err := s.client.doRequest(ctx, http.MethodGet, "/auth/me", nil, nil, &p, tokenOverride); err != nil {
		return nil, err
	}
	return &p, nil
}
