package quote

import (
	"service/internal/entities"
)

func FromDomainRecord(record *entities.QuoteRecord) *QuoteDB {
	if record == nil {
		return nil
	}

	quoteDB := &QuoteDB{
		Reference:        record.Quote.Reference,
		Carrier:          record.Quote.Carrier,
		BaseRate:         record.Quote.BaseRate,
		FuelSurcharge:    record.Quote.FuelSurcharge,
		Accessorials:     record.Quote.Accessorials,
		Total:            record.Quote.Total,
		TransitDays:      record.Quote.TransitDays,
		PickupCommitment: record.Quote.PickupCommitment,
		CreatedAt:        record.Quote.CreatedAt,

		OriginPostalCode:      record.Request.OriginPostalCode,
		DestinationPostalCode: record.Request.DestinationPostalCode,
		WeightLbs:             record.Request.WeightLbs,
		PalletCount:           record.Request.PalletCount,
		ServiceLevel:          record.Request.ServiceLevel.String(),
		FreightClass:          int(record.Request.FreightClass),

		LiftGatePickup:      record.Request.Accessorials.LiftGatePickup,
		LiftGateDelivery:    record.Request.Accessorials.LiftGateDelivery,
		ResidentialPickup:   record.Request.Accessorials.ResidentialPickup,
		ResidentialDelivery: record.Request.Accessorials.ResidentialDelivery,
		InsideDelivery:      record.Request.Accessorials.InsideDelivery,
	}

	if record.Shipper != nil {
		quoteDB.ShipperCompany = &record.Shipper.Company
		quoteDB.ShipperContactName = &record.Shipper.ContactName
		quoteDB.ShipperContactEmail = &record.Shipper.ContactEmail
		quoteDB.ShipperContactPhone = &record.Shipper.ContactPhone
	}

	return quoteDB
}

func ToDomainRecord(q *QuoteDB) *entities.QuoteRecord {
	if q == nil {
		return nil
	}

	record := &entities.QuoteRecord{
		Quote: entities.Quote{
			Reference:        q.Reference,
			Carrier:          q.Carrier,
			BaseRate:         q.BaseRate,
			FuelSurcharge:    q.FuelSurcharge,
			Accessorials:     q.Accessorials,
			Total:            q.Total,
			TransitDays:      q.TransitDays,
			PickupCommitment: q.PickupCommitment,
			CreatedAt:        q.CreatedAt,
		},
		Request: entities.QuoteRequest{
			OriginPostalCode:      q.OriginPostalCode,
			DestinationPostalCode: q.DestinationPostalCode,
			WeightLbs:             q.WeightLbs,
			PalletCount:           q.PalletCount,
			ServiceLevel:          entities.ServiceLevel(q.ServiceLevel),
			FreightClass:          entities.FreightClass(q.FreightClass),
			Accessorials: entities.Accessorials{
				LiftGatePickup:      q.LiftGatePickup,
				LiftGateDelivery:    q.LiftGateDelivery,
				ResidentialPickup:   q.ResidentialPickup,
				ResidentialDelivery: q.ResidentialDelivery,
				InsideDelivery:      q.InsideDelivery,
			},
		},
	}

	// All four shipper columns are written together, so one set column means
	// the quote is attributed.
	if q.ShipperCompany != nil {
		record.Shipper = &entities.Shipper{
			Company:      *q.ShipperCompany,
			ContactName:  valueOrEmpty(q.ShipperContactName),
			ContactEmail: valueOrEmpty(q.ShipperContactEmail),
			ContactPhone: valueOrEmpty(q.ShipperContactPhone),
		}
	}

	return record
}

func ToDomainRecordList(quotes []QuoteDB) []entities.QuoteRecord {
	records := make([]entities.QuoteRecord, 0, len(quotes))
	for i := range quotes {
		records = append(records, *ToDomainRecord(&quotes[i]))
	}
	return records
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
