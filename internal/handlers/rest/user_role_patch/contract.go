//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_patch_test
package user_role_patch

import (
	"context"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateRole(ctx context.Context, email string, role entities.UserRoleType) (*entities.User, error)
}

type AgentDirectory interface {
	SetAvailability(ctx context.Context, email string, availability entities.AgentAvailabilityType) error
}
