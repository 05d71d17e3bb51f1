//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	List(ctx context.Context) ([]entities.Shipment, error)
	AppendMilestone(ctx context.Context, trackingNumber string, milestone entities.Milestone) error
	UpdateProgress(ctx context.Context, trackingNumber, status string, lastUpdated time.Time, eta *time.Time) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
