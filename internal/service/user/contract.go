//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"parcelservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (*entities.User, error)
}
