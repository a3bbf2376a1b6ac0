package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcelservice/internal/entities"
	"parcelservice/internal/repository"
	"parcelservice/internal/service/agent"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, agentModifyEntity entities.AgentModify) (int64, error) {
	agentModifyModel := FromDomainModify(&agentModifyEntity)
	query := `INSERT INTO delivery_agents (email, name, phone, availability)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		agentModifyModel.Email,
		agentModifyModel.Name,
		agentModifyModel.Phone,
		agentModifyModel.Availability,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, agent.ErrConflict
		}
		return 0, fmt.Errorf("unexpected agent repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Agent, error) {
	query := `SELECT id, email, name, phone, availability, applied_at, updated_at
		FROM delivery_agents
		WHERE email = $1`

	var agentModel AgentDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&agentModel.ID,
			&agentModel.Email,
			&agentModel.Name,
			&agentModel.Phone,
			&agentModel.Availability,
			&agentModel.AppliedAt,
			&agentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		return nil, fmt.Errorf("unexpected agent repository getbyemail error: %w", err)
	}

	return ToDomain(&agentModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Agent, error) {
	query := `
	SELECT id, email, name, phone, availability, applied_at, updated_at
	FROM delivery_agents
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		var agentModel AgentDB
		err := rows.Scan(
			&agentModel.ID,
			&agentModel.Email,
			&agentModel.Name,
			&agentModel.Phone,
			&agentModel.Availability,
			&agentModel.AppliedAt,
			&agentModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
		}
		agentModels = append(agentModels, agentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}

	return ToDomainList(agentModels), nil
}

// UpdateAvailabilityByEmail is idempotent: writing the current value
// succeeds and touches only updated_at.
func (r *Repository) UpdateAvailabilityByEmail(ctx context.Context, email string, availability entities.AgentAvailabilityType) error {
	query := `
		UPDATE delivery_agents
		SET availability = $2,
		    updated_at = NOW()
		WHERE email = $1
	`

	result, err := r.querier.Exec(ctx, query, email, availability.String())
	if err != nil {
		return fmt.Errorf("unexpected agent repository update availability error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM delivery_agents WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected agent repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}

// UpdateAvailableWhereNoOpenParcels flips busy agents back to available
// when no parcel assigned to them remains in a non-terminal status.
func (r *Repository) UpdateAvailableWhereNoOpenParcels(ctx context.Context) (int64, error) {
	query := `
        UPDATE delivery_agents
        SET availability = 'available',
            updated_at = NOW()
        WHERE availability = 'busy'
        AND NOT EXISTS (
            SELECT 1
            FROM parcels
            WHERE parcels.agent_email = delivery_agents.email
              AND parcels.status NOT IN ('delivered', 'failed', 'cancelled')
        )
    `

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected agent repository reconcile error: %w", err)
	}

	return result.RowsAffected(), nil
}
