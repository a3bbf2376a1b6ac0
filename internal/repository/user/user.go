package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcelservice/internal/entities"
	"parcelservice/internal/repository"
	"parcelservice/internal/service/user"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (email, role)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Email,
		userModifyModel.Role,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, user.ErrConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id, email, role, created_at
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `
	SELECT id, email, role, created_at
	FROM users
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (*entities.User, error) {
	query := `
		UPDATE users
		SET role = $2
		WHERE email = $1
		RETURNING id, email, role, created_at
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email, role.String()).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository update role error: %w", err)
	}

	return ToDomain(&userModel), nil
}
