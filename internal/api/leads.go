package api

import (
	"context"
	"fmt"

	"github.com/tapdeck/tapdeck/internal/models"
)

// LeadsService handles the lead endpoints.
type LeadsService struct {
	client *Client
}

// My returns the leads captured through the user's cards.
func (s *LeadsService) My(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := s.client.get(ctx, "/leads/my-leads", nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateStatus moves a lead to a new workflow state.
func (s *LeadsService) UpdateStatus(ctx context.Context, id string, status models.LeadStatus) (*models.Lead, error) {
	body := map[string]models.LeadStatus{"status": status}
	var lead models.Lead
	if err := s.client.put(ctx, fmt.Sprintf("/leads/%s/status", id), body, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}
