//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agents_get_test
package agents_get

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
	GetAgents(ctx context.Context) ([]entities.Agent, error)
}
