package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"herbmart/internal/entities"
)

type Leave struct {
	repository   Repository
	agentService AgentService
	txManager    TxManager
}

func New(repository Repository, agentService AgentService, txManager TxManager) *Leave {
	return &Leave{
		repository:   repository,
		agentService: agentService,
		txManager:    txManager,
	}
}

func (s *Leave) GetAgentLeaves(ctx context.Context, agentUserID string) ([]entities.LeaveRequest, error) {
	if strings.TrimSpace(agentUserID) == "" {
		return nil, ErrInvalidUserID
	}

	agent, err := s.agentService.GetAgentByUserID(ctx, agentUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve agent: %w", err)
	}

	leaves, err := s.repository.GetByAgent(ctx, agent.ID)
	if err != nil {
		return nil, fmt.Errorf("get leaves: %w", err)
	}
	return leaves, nil
}

// ApplyForLeave validates the submission fully before any write; an
// invalid application never reaches the repository.
func (s *Leave) ApplyForLeave(ctx context.Context, agentUserID string, application entities.LeaveApplication) (*entities.LeaveRequest, error) {
	if strings.TrimSpace(agentUserID) == "" {
		return nil, ErrInvalidUserID
	}
	if err := validateApplication(application, time.Now().UTC()); err != nil {
		return nil, err
	}

	agent, err := s.agentService.GetAgentByUserID(ctx, agentUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve agent: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.LeaveRequest{
		AgentID:     agent.ID,
		Type:        application.Type,
		Reason:      strings.TrimSpace(application.Reason),
		Description: strings.TrimSpace(application.Description),
		StartDate:   application.StartDate,
		EndDate:     application.EndDate,
		Status:      entities.LeavePending,
	})
	if err != nil {
		return nil, fmt.Errorf("create leave: %w", err)
	}
	return created, nil
}

// CancelLeave is owner-only and legal only while the request is still
// pending; approval and rejection happen elsewhere.
func (s *Leave) CancelLeave(ctx context.Context, agentUserID string, leaveID int64) (*entities.LeaveRequest, error) {
	if strings.TrimSpace(agentUserID) == "" {
		return nil, ErrInvalidUserID
	}
	if leaveID <= 0 {
		return nil, ErrInvalidLeaveID
	}

	var cancelled *entities.LeaveRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		agent, err := s.agentService.GetAgentByUserID(ctx, agentUserID)
		if err != nil {
			return fmt.Errorf("resolve agent: %w", err)
		}

		request, err := s.repository.GetByID(ctx, leaveID)
		if err != nil {
			return fmt.Errorf("get leave: %w", err)
		}
		if request.AgentID != agent.ID {
			return ErrNotLeaveOwner
		}
		if request.Status != entities.LeavePending {
			return ErrLeaveNotPending
		}

		cancelled, err = s.repository.UpdateStatus(ctx, leaveID, entities.LeaveCancelled)
		if err != nil {
			return fmt.Errorf("update leave status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
