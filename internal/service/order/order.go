package order

import (
	"context"
	"fmt"
	"time"

	"herbmart/internal/entities"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Order) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

func (s *Order) GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}
	return orders, nil
}

// ApproveOrder moves a pending order to confirmed. Any other starting
// status is rejected.
func (s *Order) ApproveOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	var approved *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderPending {
			return ErrNotApprovable
		}

		newStatus := entities.OrderConfirmed
		approved, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &id,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// CancelOrder cancels an order on behalf of its owner. Cancellation is
// only legal while the order is pending or confirmed; the delivery axis
// is left untouched because fulfilment has not started in that window.
func (s *Order) CancelOrder(ctx context.Context, id, userID string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}

	var cancelled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.UserID != userID {
			return ErrNotOrderOwner
		}
		if !order.Status.Cancellable() {
			return ErrNotCancellable
		}

		newStatus := entities.OrderCancelled
		cancelled, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &id,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// IngestCheckout stores an order produced by the external checkout.
// Orders arrive pending and unassigned; re-delivered events for a known
// order id surface ErrOrderExists so consumers can skip idempotently.
func (s *Order) IngestCheckout(ctx context.Context, order entities.Order) (*entities.Order, error) {
	if !isValidOrderID(order.ID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidUserID(order.UserID) {
		return nil, ErrInvalidUserID
	}
	if len(order.Items) == 0 {
		return nil, ErrMissingItems
	}
	if order.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	order.Status = entities.OrderPending
	order.DeliveryStatus = entities.DeliveryUnassigned
	order.AgentID = nil
	order.TrackingNumber = nil
	if order.OrderedAt.IsZero() {
		order.OrderedAt = time.Now().UTC()
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
