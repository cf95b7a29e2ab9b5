// Package models defines the data structures exchanged with the card
// platform backend.
package models

import (
	"encoding/json"
	"time"
)

// UserProfile is the backend's representation of the authenticated identity.
// Its shape is owned by the backend and may grow without notice, so the raw
// JSON is kept verbatim as the source of truth and individual fields are
// read on demand. Storing and re-serializing a profile must not alter it.
type UserProfile struct {
	raw json.RawMessage
}

// NewUserProfile wraps a backend-supplied JSON document.
func NewUserProfile(raw []byte) UserProfile {
	return UserProfile{raw: append(json.RawMessage(nil), raw...)}
}

// MarshalJSON emits the profile exactly as it was received.
func (p UserProfile) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// UnmarshalJSON captures the document without interpreting it.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	p.raw = append(p.raw[:0], data...)
	return nil
}

// IsZero reports whether no profile has been set.
func (p UserProfile) IsZero() bool {
	return len(p.raw) == 0 || string(p.raw) == "null"
}

// Raw returns the profile's JSON document.
func (p UserProfile) Raw() []byte {
	return p.raw
}

// StringField reads a top-level string field from the profile, returning ""
// if the field is absent or not a string.
func (p UserProfile) StringField(key string) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(p.raw, &m); err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(m[key], &s); err != nil {
		return ""
	}
	return s
}

// Name returns the profile's display name, if present.
func (p UserProfile) Name() string { return p.StringField("name") }

// Email returns the profile's email address, if present.
func (p UserProfile) Email() string { return p.StringField("email") }

// Role returns the profile's role, if present.
func (p UserProfile) Role() string { return p.StringField("role") }

// BusinessCard is a personal or business card owned by or shared with the
// user.
type BusinessCard struct {
	// ID is the backend identifier of the card.
	ID string `json:"id"`
	// Type is "personal" or "business".
	Type string `json:"type,omitempty"`
	// Name is the card holder's display name.
	Name string `json:"name"`
	// Title is the card holder's job title.
	Title string `json:"title,omitempty"`
	// Company is the organization shown on the card.
	Company string `json:"company,omitempty"`
	// Email is the contact email printed on the card.
	Email string `json:"email,omitempty"`
	// Phone is the contact phone number printed on the card.
	Phone string `json:"phone,omitempty"`
	// Website is an optional URL shown on the card.
	Website string `json:"website,omitempty"`
	// Bio is free-form text shown on the card.
	Bio string `json:"bio,omitempty"`
	// Saved reports whether the current user has saved this card.
	Saved bool `json:"saved,omitempty"`
	// CreatedAt is the backend creation timestamp.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TeamCard is a card belonging to the user's team or business.
type TeamCard struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// LeadStatus is the workflow state of an inbound lead.
type LeadStatus string

const (
	// LeadNew is an untouched inbound lead.
	LeadNew LeadStatus = "new"
	// LeadContacted marks a lead the user has reached out to.
	LeadContacted LeadStatus = "contacted"
	// LeadClosed marks a finished lead.
	LeadClosed LeadStatus = "closed"
)

// Lead is an inbound contact captured through one of the user's cards.
type Lead struct {
	ID        string     `json:"id"`
	CardID    string     `json:"card_id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Note      string     `json:"note,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
}

// Customization holds the visual presentation settings of a card.
type Customization struct {
	CardID       string `json:"card_id,omitempty"`
	Theme        string `json:"theme,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	Font         string `json:"font,omitempty"`
	ShowLogo     bool   `json:"show_logo,omitempty"`
	ShowQR       bool   `json:"show_qr,omitempty"`
}
