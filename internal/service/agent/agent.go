package agent

import (
	"context"
	"fmt"
	"strings"

	"herbmart/internal/entities"
	"herbmart/internal/pkg/geo"
)

type Agent struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Agent {
	return &Agent{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Agent) GetAgent(ctx context.Context, id int64) (*entities.DeliveryAgent, error) {
	if id <= 0 {
		return nil, ErrInvalidAgentID
	}

	agent, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return agent, nil
}

func (s *Agent) GetAgentByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	agent, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get agent by user: %w", err)
	}
	return agent, nil
}

func (s *Agent) GetAgents(ctx context.Context) ([]entities.DeliveryAgent, error) {
	agents, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get agents: %w", err)
	}
	return agents, nil
}

// GetLocatedAvailableAgents feeds the auto-assign candidate pool: only
// agents that are both available and have reported a location qualify.
func (s *Agent) GetLocatedAvailableAgents(ctx context.Context) ([]entities.DeliveryAgent, error) {
	agents, err := s.repository.GetAvailableLocated(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available agents: %w", err)
	}
	return agents, nil
}

func (s *Agent) UpdateProfile(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error) {
	if agentModify.ID == nil || *agentModify.ID <= 0 {
		return nil, ErrInvalidAgentID
	}
	if agentModify.Name == nil && agentModify.Email == nil && agentModify.Location == nil && agentModify.IsAvailable == nil {
		return nil, ErrMissingRequiredFields
	}

	if agentModify.Name != nil && !isValidName(*agentModify.Name) {
		return nil, ErrInvalidName
	}
	if agentModify.Email != nil && !isValidEmail(*agentModify.Email) {
		return nil, ErrInvalidEmail
	}
	if agentModify.Location != nil {
		if !geo.ValidLatitude(agentModify.Location.Latitude) {
			return nil, ErrInvalidLatitude
		}
		if !geo.ValidLongitude(agentModify.Location.Longitude) {
			return nil, ErrInvalidLongitude
		}
	}

	agent, err := s.repository.Update(ctx, agentModify)
	if err != nil {
		return nil, fmt.Errorf("update agent: %w", err)
	}
	return agent, nil
}

// UpdateLocation validates coordinate ranges server-side; the old client
// submitted free-form numbers and trusted the backend.
func (s *Agent) UpdateLocation(ctx context.Context, userID string, location entities.GeoPoint) (*entities.DeliveryAgent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}
	if !geo.ValidLatitude(location.Latitude) {
		return nil, ErrInvalidLatitude
	}
	if !geo.ValidLongitude(location.Longitude) {
		return nil, ErrInvalidLongitude
	}

	var updated *entities.DeliveryAgent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		agent, err := s.repository.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get agent by user: %w", err)
		}

		updated, err = s.repository.Update(ctx, entities.AgentModify{
			ID:       &agent.ID,
			Location: &location,
		})
		if err != nil {
			return fmt.Errorf("update agent location: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleAvailability flips the flag without taking a desired value; the
// stored row is the sole source of truth for the post-toggle state.
func (s *Agent) ToggleAvailability(ctx context.Context, userID string) (*entities.DeliveryAgent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	var toggled *entities.DeliveryAgent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		agent, err := s.repository.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get agent by user: %w", err)
		}

		toggled, err = s.repository.ToggleAvailability(ctx, agent.ID)
		if err != nil {
			return fmt.Errorf("toggle availability: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}
