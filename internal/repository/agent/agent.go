package agent

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"herbmart/internal/entities"
	"herbmart/internal/repository"
	"herbmart/internal/service/agent"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const agentColumns = `id, user_id, name, email, latitude, longitude, is_available, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryAgent, error) {
	query := `SELECT ` + agentColumns + ` FROM delivery_agents WHERE id = $1`

	var agentModel AgentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&agentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository getbyid error: %w", err)
	}

	return ToDomain(&agentModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error) {
	query := `SELECT ` + agentColumns + ` FROM delivery_agents WHERE user_id = $1`

	var agentModel AgentDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(scanTargets(&agentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository getbyuserid error: %w", err)
	}

	return ToDomain(&agentModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryAgent, error) {
	query := `SELECT ` + agentColumns + ` FROM delivery_agents ORDER BY id`
	return r.queryAgents(ctx, query)
}

func (r *Repository) GetAvailableLocated(ctx context.Context) ([]entities.DeliveryAgent, error) {
	query := `SELECT ` + agentColumns + ` FROM delivery_agents
		WHERE is_available = TRUE
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		ORDER BY id`
	return r.queryAgents(ctx, query)
}

func (r *Repository) Update(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error) {
	builder := qb.Update("delivery_agents")

	if agentModify.Name != nil {
		builder = builder.Set("name", agentModify.Name)
	}
	if agentModify.Email != nil {
		builder = builder.Set("email", agentModify.Email)
	}
	if agentModify.Location != nil {
		builder = builder.
			Set("latitude", agentModify.Location.Latitude).
			Set("longitude", agentModify.Location.Longitude)
	}
	if agentModify.IsAvailable != nil {
		builder = builder.Set("is_available", agentModify.IsAvailable)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": agentModify.ID}).
		Suffix("RETURNING " + agentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	var agentModel AgentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&agentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, agent.ErrConflict
		}
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	return ToDomain(&agentModel), nil
}

// ToggleAvailability flips the flag in a single statement so concurrent
// toggles stay consistent with the stored value.
func (r *Repository) ToggleAvailability(ctx context.Context, id int64) (*entities.DeliveryAgent, error) {
	query := `UPDATE delivery_agents
		SET is_available = NOT is_available,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + agentColumns

	var agentModel AgentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&agentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository toggle error: %w", err)
	}

	return ToDomain(&agentModel), nil
}

func (r *Repository) queryAgents(ctx context.Context, query string, args ...interface{}) ([]entities.DeliveryAgent, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository query error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		var agentModel AgentDB
		if err := rows.Scan(scanTargets(&agentModel)...); err != nil {
			return nil, fmt.Errorf("unexpected agent repository scan error: %w", err)
		}
		agentModels = append(agentModels, agentModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected agent repository rows error: %w", err)
	}

	return ToDomainList(agentModels), nil
}

func scanTargets(a *AgentDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Email,
		&a.Latitude,
		&a.Longitude,
		&a.IsAvailable,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
