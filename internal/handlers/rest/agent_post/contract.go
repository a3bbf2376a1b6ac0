//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_post_test
package agent_post

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
	Apply(ctx context.Context, agentModify entities.AgentModify) (int64, error)
}
