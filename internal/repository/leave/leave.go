package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"herbmart/internal/entities"
	"herbmart/internal/service/leave"
)

const leaveColumns = `id, agent_id, type, reason, description, start_date, end_date, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, leaveEntity entities.LeaveRequest) (*entities.LeaveRequest, error) {
	query := `INSERT INTO leave_requests
		(agent_id, type, reason, description, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveColumns

	var leaveModel LeaveDB
	err := r.querier.QueryRow(
		ctx,
		query,
		leaveEntity.AgentID,
		leaveEntity.Type.String(),
		leaveEntity.Reason,
		leaveEntity.Description,
		leaveEntity.StartDate,
		leaveEntity.EndDate,
		leaveEntity.Status.String(),
	).Scan(scanTargets(&leaveModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected leave repository create error: %w", err)
	}

	return ToDomain(&leaveModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	var leaveModel LeaveDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&leaveModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("unexpected leave repository getbyid error: %w", err)
	}

	return ToDomain(&leaveModel), nil
}

func (r *Repository) GetByAgent(ctx context.Context, agentID int64) ([]entities.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests
		WHERE agent_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected leave repository getbyagent error: %w", err)
	}
	defer rows.Close()

	leaveModels := make([]LeaveDB, 0, 4)
	for rows.Next() {
		var leaveModel LeaveDB
		if err := rows.Scan(scanTargets(&leaveModel)...); err != nil {
			return nil, fmt.Errorf("unexpected leave repository scan error: %w", err)
		}
		leaveModels = append(leaveModels, leaveModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected leave repository rows error: %w", err)
	}

	return ToDomainList(leaveModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.LeaveStatusType) (*entities.LeaveRequest, error) {
	query := `UPDATE leave_requests
		SET status = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns

	var leaveModel LeaveDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).Scan(scanTargets(&leaveModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("unexpected leave repository update error: %w", err)
	}

	return ToDomain(&leaveModel), nil
}

func scanTargets(l *LeaveDB) []interface{} {
	return []interface{}{
		&l.ID,
		&l.AgentID,
		&l.Type,
		&l.Reason,
		&l.Description,
		&l.StartDate,
		&l.EndDate,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}
