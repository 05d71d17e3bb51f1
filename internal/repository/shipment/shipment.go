package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"service/internal/entities"
	"service/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	query := `
		SELECT id, tracking_number, customer_name, carrier,
			origin_postal_code, destination_postal_code,
			status, eta, last_updated
		FROM shipments
		WHERE tracking_number = $1
	`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, trackingNumber).Scan(
		&shipmentDB.ID,
		&shipmentDB.TrackingNumber,
		&shipmentDB.CustomerName,
		&shipmentDB.Carrier,
		&shipmentDB.OriginPostalCode,
		&shipmentDB.DestinationPostalCode,
		&shipmentDB.Status,
		&shipmentDB.ETA,
		&shipmentDB.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	milestones, err := r.milestonesByShipmentIDs(ctx, []int64{shipmentDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&shipmentDB, milestones[shipmentDB.ID]), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Shipment, error) {
	query := `
		SELECT id, tracking_number, customer_name, carrier,
			origin_postal_code, destination_postal_code,
			status, eta, last_updated
		FROM shipments
		ORDER BY last_updated DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	ids := make([]int64, 0, 8)
	for rows.Next() {
		var shipmentDB ShipmentDB
		err := rows.Scan(
			&shipmentDB.ID,
			&shipmentDB.TrackingNumber,
			&shipmentDB.CustomerName,
			&shipmentDB.Carrier,
			&shipmentDB.OriginPostalCode,
			&shipmentDB.DestinationPostalCode,
			&shipmentDB.Status,
			&shipmentDB.ETA,
			&shipmentDB.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentDB)
		ids = append(ids, shipmentDB.ID)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	milestones, err := r.milestonesByShipmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	shipments := make([]entities.Shipment, 0, len(shipmentModels))
	for i := range shipmentModels {
		shipments = append(shipments, *ToDomain(&shipmentModels[i], milestones[shipmentModels[i].ID]))
	}
	return shipments, nil
}

func (r *Repository) AppendMilestone(ctx context.Context, trackingNumber string, milestone entities.Milestone) error {
	query := `
		INSERT INTO shipment_milestones (shipment_id, occurred_at, location, status, notes)
		SELECT id, $2, $3, $4, $5
		FROM shipments
		WHERE tracking_number = $1
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		trackingNumber,
		milestone.Timestamp,
		milestone.Location,
		milestone.Status,
		milestone.Notes,
	)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository append milestone error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) UpdateProgress(ctx context.Context, trackingNumber, status string, lastUpdated time.Time, eta *time.Time) error {
	builder := qb.
		Update("shipments").
		Set("status", status).
		Set("last_updated", lastUpdated)

	// eta only moves when the feed sends a revised estimate
	if eta != nil {
		builder = builder.Set("eta", *eta)
	}

	builder = builder.Where(sq.Eq{"tracking_number": trackingNumber})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update progress error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update progress error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) milestonesByShipmentIDs(ctx context.Context, ids []int64) (map[int64][]MilestoneDB, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT shipment_id, occurred_at, location, status, notes
		FROM shipment_milestones
		WHERE shipment_id = ANY($1)
		ORDER BY occurred_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository milestones error: %w", err)
	}
	defer rows.Close()

	milestones := make(map[int64][]MilestoneDB, len(ids))
	for rows.Next() {
		var milestoneDB MilestoneDB
		err := rows.Scan(
			&milestoneDB.ShipmentID,
			&milestoneDB.OccurredAt,
			&milestoneDB.Location,
			&milestoneDB.Status,
			&milestoneDB.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository milestones error: %w", err)
		}
		milestones[milestoneDB.ShipmentID] = append(milestones[milestoneDB.ShipmentID], milestoneDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository milestones error: %w", err)
	}

	return milestones, nil
}
