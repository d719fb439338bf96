package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"herbmart/internal/entities"
	"herbmart/internal/repository"
	"herbmart/internal/service/assignment"
	"herbmart/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, status, delivery_status, agent_id, tracking_number,
	total_amount, dest_latitude, dest_longitude, ordered_at, assigned_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order row plus its line items; callers run it inside
// a transaction so the two stay atomic.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query := `INSERT INTO orders
		(id, user_id, status, delivery_status, total_amount, dest_latitude, dest_longitude, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	var created OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.UserID,
		orderModel.Status,
		orderModel.DeliveryStatus,
		orderModel.TotalAmount,
		orderModel.DestLatitude,
		orderModel.DestLongitude,
		orderModel.OrderedAt,
	).Scan(scanTargets(&created)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderExists
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`
	for _, item := range orderModel.Items {
		_, err := r.querier.Exec(ctx, itemQuery, orderModel.ID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
	}
	created.Items = orderModel.Items

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	if err := r.loadItems(ctx, []*OrderDB{&orderModel}); err != nil {
		return nil, err
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY ordered_at DESC, id`
	return r.queryOrders(ctx, query)
}

func (r *Repository) GetByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY ordered_at DESC, id`
	return r.queryOrders(ctx, query, userID)
}

// GetAvailable returns the claimable pool: unassigned, approved and not
// yet terminal.
func (r *Repository) GetAvailable(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE agent_id IS NULL
		  AND status NOT IN ('pending', 'cancelled', 'delivered')
		ORDER BY ordered_at, id`
	return r.queryOrders(ctx, query)
}

func (r *Repository) GetByAgent(ctx context.Context, agentID int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE agent_id = $1 ORDER BY ordered_at DESC, id`
	return r.queryOrders(ctx, query, agentID)
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.Update("orders")

	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.DeliveryStatus != nil {
		builder = builder.Set("delivery_status", orderModify.DeliveryStatus.String())
	}
	if orderModify.TrackingNumber != nil {
		builder = builder.Set("tracking_number", orderModify.TrackingNumber)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	if err := r.loadItems(ctx, []*OrderDB{&orderModel}); err != nil {
		return nil, err
	}

	return ToDomain(&orderModel), nil
}

// Claim only succeeds while agent_id is still NULL; the WHERE guard is
// what makes concurrent claims lose cleanly instead of double-assigning.
func (r *Repository) Claim(ctx context.Context, orderID string, agentID int64, trackingNumber string) (*entities.Order, error) {
	query := `UPDATE orders
		SET agent_id = $2,
		    delivery_status = 'assigned',
		    tracking_number = COALESCE(tracking_number, $3),
		    assigned_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1 AND agent_id IS NULL
		RETURNING ` + orderColumns

	return r.assignRow(ctx, query, orderID, agentID, trackingNumber, true)
}

func (r *Repository) Assign(ctx context.Context, orderID string, agentID int64, trackingNumber string) (*entities.Order, error) {
	query := `UPDATE orders
		SET agent_id = $2,
		    delivery_status = 'assigned',
		    tracking_number = COALESCE(tracking_number, $3),
		    assigned_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	return r.assignRow(ctx, query, orderID, agentID, trackingNumber, false)
}

func (r *Repository) ReleaseStaleAssignments(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `UPDATE orders
		SET agent_id = NULL,
		    delivery_status = 'unassigned',
		    assigned_at = NULL,
		    updated_at = NOW()
		WHERE delivery_status = 'assigned'
		  AND assigned_at < NOW() - make_interval(secs => $1)`

	result, err := r.querier.Exec(ctx, query, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository release stale error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) assignRow(ctx context.Context, query, orderID string, agentID int64, trackingNumber string, guarded bool) (*entities.Order, error) {
	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, agentID, trackingNumber).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if guarded {
				return nil, r.classifyClaimMiss(ctx, orderID)
			}
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository assign error: %w", err)
	}

	if err := r.loadItems(ctx, []*OrderDB{&orderModel}); err != nil {
		return nil, err
	}

	return ToDomain(&orderModel), nil
}

// classifyClaimMiss tells a lost claim race apart from a missing order.
func (r *Repository) classifyClaimMiss(ctx context.Context, orderID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository claim check error: %w", err)
	}
	if exists {
		return assignment.ErrOrderAlreadyAssigned
	}
	return order.ErrOrderNotFound
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository query error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanTargets(&orderModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	refs := make([]*OrderDB, len(orderModels))
	for i := range orderModels {
		refs[i] = &orderModels[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) loadItems(ctx context.Context, orders []*OrderDB) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[string]*OrderDB, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	query := `SELECT order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("unexpected order repository load items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item OrderItemDB
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("unexpected order repository scan item error: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("unexpected order repository items rows error: %w", err)
	}

	return nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.UserID,
		&o.Status,
		&o.DeliveryStatus,
		&o.AgentID,
		&o.TrackingNumber,
		&o.TotalAmount,
		&o.DestLatitude,
		&o.DestLongitude,
		&o.OrderedAt,
		&o.AssignedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
