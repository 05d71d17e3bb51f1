package quote

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/quote"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.QuoteRecord) error {
	quoteDB := FromDomainRecord(&record)

	query := `
		INSERT INTO quotes (
			reference, carrier,
			base_rate, fuel_surcharge, accessorials_total, total,
			transit_days, pickup_commitment, created_at,
			origin_postal_code, destination_postal_code,
			weight_lbs, pallet_count, service_level, freight_class,
			lift_gate_pickup, lift_gate_delivery,
			residential_pickup, residential_delivery, inside_delivery,
			shipper_company, shipper_contact_name, shipper_contact_email, shipper_contact_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		quoteDB.Reference,
		quoteDB.Carrier,
		quoteDB.BaseRate,
		quoteDB.FuelSurcharge,
		quoteDB.Accessorials,
		quoteDB.Total,
		quoteDB.TransitDays,
		quoteDB.PickupCommitment,
		quoteDB.CreatedAt,
		quoteDB.OriginPostalCode,
		quoteDB.DestinationPostalCode,
		quoteDB.WeightLbs,
		quoteDB.PalletCount,
		quoteDB.ServiceLevel,
		quoteDB.FreightClass,
		quoteDB.LiftGatePickup,
		quoteDB.LiftGateDelivery,
		quoteDB.ResidentialPickup,
		quoteDB.ResidentialDelivery,
		quoteDB.InsideDelivery,
		quoteDB.ShipperCompany,
		quoteDB.ShipperContactName,
		quoteDB.ShipperContactEmail,
		quoteDB.ShipperContactPhone,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return quote.ErrConflict
		}
		return fmt.Errorf("unexpected quote repository create error: %w", err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]entities.QuoteRecord, error) {
	query := `
		SELECT
			reference, carrier,
			base_rate, fuel_surcharge, accessorials_total, total,
			transit_days, pickup_commitment, created_at,
			origin_postal_code, destination_postal_code,
			weight_lbs, pallet_count, service_level, freight_class,
			lift_gate_pickup, lift_gate_delivery,
			residential_pickup, residential_delivery, inside_delivery,
			shipper_company, shipper_contact_name, shipper_contact_email, shipper_contact_phone
		FROM quotes
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
	}
	defer rows.Close()

	quoteModels := make([]QuoteDB, 0, 8)
	for rows.Next() {
		var quoteDB QuoteDB
		err := rows.Scan(
			&quoteDB.Reference,
			&quoteDB.Carrier,
			&quoteDB.BaseRate,
			&quoteDB.FuelSurcharge,
			&quoteDB.Accessorials,
			&quoteDB.Total,
			&quoteDB.TransitDays,
			&quoteDB.PickupCommitment,
			&quoteDB.CreatedAt,
			&quoteDB.OriginPostalCode,
			&quoteDB.DestinationPostalCode,
			&quoteDB.WeightLbs,
			&quoteDB.PalletCount,
			&quoteDB.ServiceLevel,
			&quoteDB.FreightClass,
			&quoteDB.LiftGatePickup,
			&quoteDB.LiftGateDelivery,
			&quoteDB.ResidentialPickup,
			&quoteDB.ResidentialDelivery,
			&quoteDB.InsideDelivery,
			&quoteDB.ShipperCompany,
			&quoteDB.ShipperContactName,
			&quoteDB.ShipperContactEmail,
			&quoteDB.ShipperContactPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
		}
		quoteModels = append(quoteModels, quoteDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
	}

	return ToDomainRecordList(quoteModels), nil
}
