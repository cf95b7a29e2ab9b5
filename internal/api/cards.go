package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tapdeck/tapdeck/internal/models"
)

// CardsService handles the business-card endpoints.
type CardsService struct {
	client *Client
}

// CardRequest is the writable part of a business card.
type CardRequest struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// List returns the user's business cards. cardType filters by "personal" or
// "business"; empty means all.
func (s *CardsService) List(ctx context.Context, cardType string) ([]models.BusinessCard, error) {
	var query url.Values
	if cardType != "" {
		query = url.Values{"type": {cardType}}
	}
	var cards []models.BusinessCard
	if err := s.client.get(ctx, "/business-cards", query, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Get retrieves one card by id.
func (s *CardsService) Get(ctx context.Context, id string) (*models.BusinessCard, error) {
	var card models.BusinessCard
	if err := s.client.get(ctx, fmt.Sprintf("/business-cards/%s", id), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Create makes a new card.
func (s *CardsService) Create(ctx context.Context, req CardRequest) (*models.BusinessCard, error) {
	var card models.BusinessCard
	if err := s.client.post(ctx, "/business-cards", req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Update replaces a card's writable fields.
func (s *CardsService) Update(ctx context.Context, id string, req CardRequest) (*models.BusinessCard, error) {
	var card models.BusinessCard
	if err := s.client.put(ctx, fmt.Sprintf("/business-cards/%s", id), req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete removes a card.
func (s *CardsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/business-cards/%s", id))
}

// Save adds another user's card to the saved list.
func (s *CardsService) Save(ctx context.Context, id string) error {
	return s.client.post(ctx, fmt.Sprintf("/business-cards/save/%s", id), nil, nil)
}

// Unsave removes a card from the saved list.
func (s *CardsService) Unsave(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/business-cards/unsave/%s", id))
}
