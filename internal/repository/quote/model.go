package quote

import "time"

type QuoteDB struct {
	ID               int64
	Reference        string
	Carrier          string
	BaseRate         float64
	FuelSurcharge    float64
	Accessorials     float64
	Total            float64
	TransitDays      int
	PickupCommitment time.Time
	CreatedAt        time.Time

	OriginPostalCode      string
	DestinationPostalCode string
	WeightLbs             float64
	PalletCount           int
	ServiceLevel          string
	FreightClass          int

	LiftGatePickup      bool
	LiftGateDelivery    bool
	ResidentialPickup   bool
	ResidentialDelivery bool
	InsideDelivery      bool

	ShipperCompany      *string
	ShipperContactName  *string
	ShipperContactEmail *string
	ShipperContactPhone *string
}
