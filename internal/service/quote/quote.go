package quote

import (
	"context"
	"fmt"

	"service/internal/entities"
)

const (
	channelWeb   = "web"
	channelVoice = "voice"
)

// Quote prices requests through the rating engine and persists the result.
// Both channels create quotes here, so a phone caller and the web form get
// identical pricing for identical requests.
type Quote struct {
	rater      Rater
	repository Repository
	txManager  TxManager
}

func New(rater Rater, repository Repository, txManager TxManager) *Quote {
	return &Quote{
		rater:      rater,
		repository: repository,
		txManager:  txManager,
	}
}

// CreateQuote rates the request and stores the resulting quote. shipper is
// nil for voice-originated quotes; the quote is still stored and listable,
// just unattributed.
func (s *Quote) CreateQuote(ctx context.Context, request entities.QuoteRequest, shipper *entities.Shipper) (*entities.Quote, error) {
	priced, err := s.rater.Quote(request)
	if err != nil {
		return nil, err
	}

	record := entities.QuoteRecord{
		Quote:   priced,
		Request: request,
		Shipper: shipper,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Create(ctx, record)
	})
	if err != nil {
		return nil, fmt.Errorf("store quote: %w", err)
	}

	QuotesCreatedTotal.WithLabelValues(channelFor(shipper)).Inc()

	return &priced, nil
}

func (s *Quote) ListQuotes(ctx context.Context) ([]entities.QuoteRecord, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return records, nil
}

func channelFor(shipper *entities.Shipper) string {
	if shipper != nil {
		return channelWeb
	}
	return channelVoice
}
