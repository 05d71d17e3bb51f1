//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_test
package quote

import (
	"context"

	"service/internal/entities"
)

type Rater interface {
	Quote(request entities.QuoteRequest) (entities.Quote, error)
}

type Repository interface {
	Create(ctx context.Context, record entities.QuoteRecord) error
	List(ctx context.Context) ([]entities.QuoteRecord, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
