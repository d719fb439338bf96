package assignment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"herbmart/internal/entities"
	"herbmart/internal/pkg/geo"
)

type Assignment struct {
	repository      Repository
	agentService    AgentService
	trackingFactory TrackingFactory
	txManager       TxManager
	staleAfter      time.Duration
}

func New(
	repository Repository,
	agentService AgentService,
	trackingFactory TrackingFactory,
	txManager TxManager,
	staleAfter time.Duration,
) *Assignment {
	return &Assignment{
		repository:      repository,
		agentService:    agentService,
		trackingFactory: trackingFactory,
		txManager:       txManager,
		staleAfter:      staleAfter,
	}
}

// AssignmentResult carries the auto-assign outcome; DistanceKm is shown
// to the operator as a confirmation hint, nothing decides on it client-side.
type AssignmentResult struct {
	Order      *entities.Order
	Agent      entities.DeliveryAgent
	DistanceKm float64
}

func (s *Assignment) GetAvailableOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available orders: %w", err)
	}
	return orders, nil
}

func (s *Assignment) GetAgentOrders(ctx context.Context, agentUserID string) ([]entities.Order, error) {
	if !isValidUserID(agentUserID) {
		return nil, ErrInvalidUserID
	}

	agent, err := s.agentService.GetAgentByUserID(ctx, agentUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve agent: %w", err)
	}

	orders, err := s.repository.GetByAgent(ctx, agent.ID)
	if err != nil {
		return nil, fmt.Errorf("get agent orders: %w", err)
	}
	return orders, nil
}

// ClaimOrder lets an agent self-assign an unassigned order. The repository
// guard keeps the claim atomic, so two racing agents cannot both win.
func (s *Assignment) ClaimOrder(ctx context.Context, orderID, agentUserID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidUserID(agentUserID) {
		return nil, ErrInvalidUserID
	}

	var claimed *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if err := assignable(order); err != nil {
			return err
		}

		agent, err := s.agentService.GetAgentByUserID(ctx, agentUserID)
		if err != nil {
			return fmt.Errorf("resolve agent: %w", err)
		}

		claimed, err = s.claimAndAdvance(ctx, order, agent.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// AssignOrder is the admin manual assignment. The agent's availability
// flag is advisory here and deliberately not enforced.
func (s *Assignment) AssignOrder(ctx context.Context, orderID string, agentID int64) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if agentID <= 0 {
		return nil, ErrMissingAgentID
	}

	var assigned *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Status == entities.OrderCancelled {
			return ErrOrderCancelled
		}
		if order.Status == entities.OrderPending {
			return ErrOrderNotApproved
		}
		if deliveryStarted(order.DeliveryStatus) {
			return ErrDeliveryInProgress
		}

		agent, err := s.agentService.GetAgent(ctx, agentID)
		if err != nil {
			return fmt.Errorf("resolve agent: %w", err)
		}

		tracking := orderTracking(order, s.trackingFactory)
		assigned, err = s.repository.Assign(ctx, order.ID, agent.ID, tracking)
		if err != nil {
			return fmt.Errorf("assign order: %w", err)
		}

		assigned, err = s.advanceBusinessStatus(ctx, assigned, entities.DeliveryAssigned)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// AutoAssignNearest picks the closest available, located agent to the
// order destination and assigns atomically.
func (s *Assignment) AutoAssignNearest(ctx context.Context, orderID string) (*AssignmentResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	result := &AssignmentResult{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if err := assignable(order); err != nil {
			return err
		}
		if order.Destination == nil {
			return ErrOrderNotLocated
		}

		candidates, err := s.rankedCandidates(ctx, *order.Destination)
		if err != nil {
			return err
		}
		nearest := candidates[0]

		claimed, err := s.claimAndAdvance(ctx, order, nearest.Agent.ID)
		if err != nil {
			return err
		}

		result.Order = claimed
		result.Agent = nearest.Agent
		result.DistanceKm = nearest.DistanceKm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NearestCandidates returns ranked suggestions for the operator. Purely
// advisory, never auto-applied.
func (s *Assignment) NearestCandidates(ctx context.Context, orderID string, limit int) ([]entities.NearestCandidate, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.Destination == nil {
		return nil, ErrOrderNotLocated
	}

	candidates, err := s.rankedCandidates(ctx, *order.Destination)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// AdvanceDeliveryStatus applies a single step of the fulfilment state
// machine on behalf of the assigned agent. The business axis follows
// where the fulfilment step implies it (out_for_delivery means shipped,
// a delivered parcel means a delivered order).
func (s *Assignment) AdvanceDeliveryStatus(ctx context.Context, orderID, agentUserID string, next entities.DeliveryStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidUserID(agentUserID) {
		return nil, ErrInvalidUserID
	}
	if !next.IsValid() {
		return nil, ErrUndefinedStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Status == entities.OrderCancelled {
			return ErrOrderCancelled
		}

		agent, err := s.agentService.GetAgentByUserID(ctx, agentUserID)
		if err != nil {
			return fmt.Errorf("resolve agent: %w", err)
		}
		if order.AgentID == nil || *order.AgentID != agent.ID {
			return ErrNotAssignee
		}

		if !order.DeliveryStatus.CanTransitionTo(next) {
			return ErrIllegalTransition
		}

		modify := entities.OrderModify{
			ID:             &order.ID,
			DeliveryStatus: &next,
		}
		if business := businessStatusFor(next); business != nil {
			modify.Status = business
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReleaseStaleAssignments frees orders stuck in assigned with no pickup,
// returning them to the available pool.
func (s *Assignment) ReleaseStaleAssignments(ctx context.Context) (int64, error) {
	released, err := s.repository.ReleaseStaleAssignments(ctx, s.staleAfter)
	if err != nil {
		return 0, fmt.Errorf("release stale assignments: %w", err)
	}
	return released, nil
}

func (s *Assignment) claimAndAdvance(ctx context.Context, order *entities.Order, agentID int64) (*entities.Order, error) {
	tracking := orderTracking(order, s.trackingFactory)

	claimed, err := s.repository.Claim(ctx, order.ID, agentID, tracking)
	if err != nil {
		return nil, fmt.Errorf("claim order: %w", err)
	}

	return s.advanceBusinessStatus(ctx, claimed, entities.DeliveryAssigned)
}

// advanceBusinessStatus applies the business-axis side effect implied by
// a fulfilment step, if any.
func (s *Assignment) advanceBusinessStatus(ctx context.Context, order *entities.Order, step entities.DeliveryStatusType) (*entities.Order, error) {
	business := businessStatusFor(step)
	if business == nil || order.Status == *business || order.Status.Terminal() {
		return order, nil
	}

	updated, err := s.repository.Update(ctx, entities.OrderModify{
		ID:     &order.ID,
		Status: business,
	})
	if err != nil {
		return nil, fmt.Errorf("advance business status: %w", err)
	}
	return updated, nil
}

func (s *Assignment) rankedCandidates(ctx context.Context, destination entities.GeoPoint) ([]entities.NearestCandidate, error) {
	agents, err := s.agentService.GetLocatedAvailableAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available agents: %w", err)
	}
	if len(agents) == 0 {
		return nil, ErrNoAvailableAgents
	}

	candidates := make([]entities.NearestCandidate, 0, len(agents))
	for _, agent := range agents {
		if agent.Location == nil {
			continue
		}
		candidates = append(candidates, entities.NearestCandidate{
			Agent:      agent,
			DistanceKm: geo.DistanceKm(*agent.Location, destination),
		})
	}
	if len(candidates) == 0 {
		return nil, ErrNoAvailableAgents
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].Agent.ID < candidates[j].Agent.ID
	})

	return candidates, nil
}

func orderTracking(order *entities.Order, factory TrackingFactory) string {
	if order.TrackingNumber != nil {
		return *order.TrackingNumber
	}
	return factory.NewTrackingNumber()
}

// assignable guards the self-assignment paths: the order must be approved,
// not cancelled and not held by another agent. Pending orders never reach
// the available pool, so a pending claim is always a direct request.
func assignable(order *entities.Order) error {
	if order.Status == entities.OrderCancelled {
		return ErrOrderCancelled
	}
	if order.Status == entities.OrderPending {
		return ErrOrderNotApproved
	}
	if order.AgentID != nil {
		return ErrOrderAlreadyAssigned
	}
	return nil
}

func deliveryStarted(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryPickedUp, entities.DeliveryOutForDelivery, entities.DeliveryDelivered:
		return true
	default:
		return false
	}
}

// businessStatusFor maps a fulfilment step to the business status it
// implies. Steps with no business-side meaning return nil.
func businessStatusFor(step entities.DeliveryStatusType) *entities.OrderStatusType {
	var status entities.OrderStatusType
	switch step {
	case entities.DeliveryAssigned, entities.DeliveryPickedUp:
		status = entities.OrderProcessing
	case entities.DeliveryOutForDelivery:
		status = entities.OrderShipped
	case entities.DeliveryDelivered:
		status = entities.OrderDelivered
	default:
		return nil
	}
	return &status
}
