//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_delete_test
package agent_delete

import (
	"context"

	"parcelservice/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteAgent(ctx context.Context, id int64) error
}
