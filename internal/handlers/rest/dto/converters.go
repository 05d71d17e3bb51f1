package dto

import "service/internal/entities"

func FromQuote(q *entities.Quote) Quote {
	return Quote{
		Reference:        q.Reference,
		Carrier:          q.Carrier,
		BaseRate:         q.BaseRate,
		FuelSurcharge:    q.FuelSurcharge,
		Accessorials:     q.Accessorials,
		Total:            q.Total,
		TransitDays:      q.TransitDays,
		PickupCommitment: q.PickupCommitment,
		CreatedAt:        q.CreatedAt,
	}
}

func FromQuoteRecord(record *entities.QuoteRecord) QuoteRecord {
	recordDTO := QuoteRecord{
		Quote: FromQuote(&record.Quote),
		Request: QuoteRequest{
			OriginPostalCode:      record.Request.OriginPostalCode,
			DestinationPostalCode: record.Request.DestinationPostalCode,
			WeightLbs:             record.Request.WeightLbs,
			PalletCount:           record.Request.PalletCount,
			ServiceLevel:          record.Request.ServiceLevel.String(),
			FreightClass:          int(record.Request.FreightClass),
			Accessorials: Accessorials{
				LiftGatePickup:      record.Request.Accessorials.LiftGatePickup,
				LiftGateDelivery:    record.Request.Accessorials.LiftGateDelivery,
				ResidentialPickup:   record.Request.Accessorials.ResidentialPickup,
				ResidentialDelivery: record.Request.Accessorials.ResidentialDelivery,
				InsideDelivery:      record.Request.Accessorials.InsideDelivery,
			},
		},
	}

	if record.Shipper != nil {
		recordDTO.Shipper = &Shipper{
			Company:      record.Shipper.Company,
			ContactName:  record.Shipper.ContactName,
			ContactEmail: record.Shipper.ContactEmail,
			ContactPhone: record.Shipper.ContactPhone,
		}
	}

	return recordDTO
}

func FromShipment(s *entities.Shipment) Shipment {
	shipmentDTO := Shipment{
		TrackingNumber:        s.TrackingNumber,
		CustomerName:          s.CustomerName,
		Carrier:               s.Carrier,
		OriginPostalCode:      s.OriginPostalCode,
		DestinationPostalCode: s.DestinationPostalCode,
		Status:                s.Status,
		ETA:                   s.ETA,
		LastUpdated:           s.LastUpdated,
		Milestones:            make([]Milestone, 0, len(s.Milestones)),
	}

	for _, m := range s.Milestones {
		shipmentDTO.Milestones = append(shipmentDTO.Milestones, Milestone{
			Timestamp: m.Timestamp,
			Location:  m.Location,
			Status:    m.Status,
			Notes:     m.Notes,
		})
	}

	return shipmentDTO
}
