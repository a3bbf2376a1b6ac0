package auth

import (
	"context"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

type RoleSource interface {
	GetRole(ctx context.Context, email string) (entities.UserRoleType, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
