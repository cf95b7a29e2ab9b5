package api

import (
	"context"
	"fmt"

	"github.com/tapdeck/tapdeck/internal/models"
)

// CustomizationService handles the card-customization endpoints.
type CustomizationService struct {
	client *Client
}

// Get reads the customization settings of a card.
func (s *CustomizationService) Get(ctx context.Context, cardID string) (*models.Customization, error) {
	var cust models.Customization
	if err := s.client.get(ctx, fmt.Sprintf("/card-customization/%s", cardID), nil, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

// Set writes the customization settings of a card.
func (s *CustomizationService) Set(ctx context.Context, cardID string, cust models.Customization) (*models.Customization, error) {
	var out models.Customization
	if err := s.client.post(ctx, fmt.Sprintf("/card-customization/%s", cardID), cust, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
