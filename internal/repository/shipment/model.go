package shipment

import "time"

type ShipmentDB struct {
	ID                    int64
	TrackingNumber        string
	CustomerName          string
	Carrier               string
	OriginPostalCode      string
	DestinationPostalCode string
	Status                string
	ETA                   time.Time
	LastUpdated           time.Time
}

type MilestoneDB struct {
	ShipmentID int64
	OccurredAt time.Time
	Location   string
	Status     string
	Notes      string
}
