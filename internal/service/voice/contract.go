//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_test
package voice

import (
	"context"

	"service/internal/entities"
)

type QuoteService interface {
	CreateQuote(ctx context.Context, request entities.QuoteRequest, shipper *entities.Shipper) (*entities.Quote, error)
}

type ShipmentService interface {
	GetShipment(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
}

// SessionStore keeps per-call dialog state between webhook turns. Get returns
// an empty session for unknown call ids. Update applies fn to the current
// session atomically, so concurrent turns on one call cannot lose a collected
// field to a read-modify-write race.
type SessionStore interface {
	Get(ctx context.Context, callID string) entities.CallSession
	Update(ctx context.Context, callID string, fn func(entities.CallSession) entities.CallSession)
	Delete(ctx context.Context, callID string)
}
