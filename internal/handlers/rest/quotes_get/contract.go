//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotes_get_test
package quotes_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListQuotes(ctx context.Context) ([]entities.QuoteRecord, error)
}
