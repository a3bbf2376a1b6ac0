package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelservice/internal/entities"
	"parcelservice/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, owner_email, pickup_address, delivery_address,
		pickup_lat, pickup_lon, delivery_lat, delivery_lon,
		parcel_type, payment_type, agent_email, agent_name, agent_phone,
		status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `INSERT INTO parcels (owner_email, pickup_address, delivery_address,
			pickup_lat, pickup_lon, delivery_lat, delivery_lon,
			parcel_type, payment_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.OwnerEmail,
		parcelModifyModel.PickupAddress,
		parcelModifyModel.DeliveryAddress,
		parcelModifyModel.PickupLat,
		parcelModifyModel.PickupLon,
		parcelModifyModel.DeliveryLat,
		parcelModifyModel.DeliveryLon,
		parcelModifyModel.ParcelType,
		parcelModifyModel.PaymentType,
		parcelModifyModel.Status,
	).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	if parcelModifyModel.PickupAddress != nil {
		builder = builder.Set("pickup_address", parcelModifyModel.PickupAddress)
	}
	if parcelModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", parcelModifyModel.DeliveryAddress)
	}
	if parcelModifyModel.PickupLat != nil {
		builder = builder.Set("pickup_lat", parcelModifyModel.PickupLat)
		builder = builder.Set("pickup_lon", parcelModifyModel.PickupLon)
	}
	if parcelModifyModel.DeliveryLat != nil {
		builder = builder.Set("delivery_lat", parcelModifyModel.DeliveryLat)
		builder = builder.Set("delivery_lon", parcelModifyModel.DeliveryLon)
	}
	if parcelModifyModel.ParcelType != nil {
		builder = builder.Set("parcel_type", parcelModifyModel.ParcelType)
	}
	if parcelModifyModel.PaymentType != nil {
		builder = builder.Set("payment_type", parcelModifyModel.PaymentType)
	}
	if parcelModifyModel.AgentEmail != nil {
		builder = builder.Set("agent_email", parcelModifyModel.AgentEmail)
	}
	if parcelModifyModel.AgentName != nil {
		builder = builder.Set("agent_name", parcelModifyModel.AgentName)
	}
	if parcelModifyModel.AgentPhone != nil {
		builder = builder.Set("agent_phone", parcelModifyModel.AgentPhone)
	}
	if parcelModifyModel.Status != nil {
		builder = builder.Set("status", parcelModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelModel ParcelDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByOwner(ctx context.Context, ownerEmail string) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE owner_email = $1
		ORDER BY id`

	return r.queryList(ctx, query, ownerEmail)
}

// GetOpenByAgent returns the agent's open assignments: parcels assigned to
// it that have not yet reached a terminal status.
func (r *Repository) GetOpenByAgent(ctx context.Context, agentEmail string) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE agent_email = $1
		  AND status NOT IN ('delivered', 'failed', 'cancelled')
		ORDER BY id`

	return r.queryList(ctx, query, agentEmail)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(scanTargets(&parcelModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func scanTargets(p *ParcelDB) []interface{} {
	return []interface{}{
		&p.ID,
		&p.OwnerEmail,
		&p.PickupAddress,
		&p.DeliveryAddress,
		&p.PickupLat,
		&p.PickupLon,
		&p.DeliveryLat,
		&p.DeliveryLon,
		&p.ParcelType,
		&p.PaymentType,
		&p.AgentEmail,
		&p.AgentName,
		&p.AgentPhone,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
