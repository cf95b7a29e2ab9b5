package api

import (
	"context"
	"fmt"

	"github.com/tapdeck/tapdeck/internal/models"
)

// TeamService handles the team-card endpoints.
type TeamService struct {
	client *Client
}

// TeamCardRequest is the writable part of a team card.
type TeamCardRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// List returns the team's cards.
func (s *TeamService) List(ctx context.Context) ([]models.TeamCard, error) {
	var cards []models.TeamCard
	if err := s.client.get(ctx, "/team-card", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Create adds a card to the team.
func (s *TeamService) Create(ctx context.Context, req TeamCardRequest) (*models.TeamCard, error) {
	var card models.TeamCard
	if err := s.client.post(ctx, "/team-card", req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete removes a team card.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/team-card/%s", id))
}
