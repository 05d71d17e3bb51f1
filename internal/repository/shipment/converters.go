package shipment

import "service/internal/entities"

func ToDomain(s *ShipmentDB, milestones []MilestoneDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipmentEntity := &entities.Shipment{
		TrackingNumber:        s.TrackingNumber,
		CustomerName:          s.CustomerName,
		Carrier:               s.Carrier,
		OriginPostalCode:      s.OriginPostalCode,
		DestinationPostalCode: s.DestinationPostalCode,
		Status:                s.Status,
		ETA:                   s.ETA,
		LastUpdated:           s.LastUpdated,
	}

	for i := range milestones {
		shipmentEntity.Milestones = append(shipmentEntity.Milestones, ToMilestoneDomain(&milestones[i]))
	}

	return shipmentEntity
}

func ToMilestoneDomain(m *MilestoneDB) entities.Milestone {
	return entities.Milestone{
		Timestamp: m.OccurredAt,
		Location:  m.Location,
		Status:    m.Status,
		Notes:     m.Notes,
	}
}
