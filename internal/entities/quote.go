package entities

import (
	"time"
)

type ServiceLevel string

const (
	ServiceStandard  ServiceLevel = "standard"
	ServiceExpedited ServiceLevel = "expedited"
	ServiceExpress   ServiceLevel = "express"
)

func (s ServiceLevel) String() string {
	return string(s)
}

// FreightClass is an NMFC commodity class. Only the enumerated values are
// accepted by the rating engine.
type FreightClass int

var FreightClasses = []FreightClass{
	50, 55, 60, 65, 70, 77, 85, 92, 100, 110, 125, 150, 175, 200, 250, 300, 400, 500,
}

const DefaultVoiceFreightClass FreightClass = 125

// Ordinal returns the position of the class within the NMFC set, or -1 when
// the class is not part of it. Rating multipliers are keyed by ordinal.
func (c FreightClass) Ordinal() int {
	for i, known := range FreightClasses {
		if known == c {
			return i
		}
	}
	return -1
}

type Accessorials struct {
	LiftGatePickup      bool
	LiftGateDelivery    bool
	ResidentialPickup   bool
	ResidentialDelivery bool
	InsideDelivery      bool
}

type QuoteRequest struct {
	OriginPostalCode      string
	DestinationPostalCode string
	WeightLbs             float64
	PalletCount           int
	ServiceLevel          ServiceLevel
	FreightClass          FreightClass
	Accessorials          Accessorials
}

// Shipper attributes a quote to the requesting company. Voice-originated
// quotes carry no shipper.
type Shipper struct {
	Company      string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

type Quote struct {
	Reference        string
	Carrier          string
	BaseRate         float64
	FuelSurcharge    float64
	Accessorials     float64
	Total            float64
	TransitDays      int
	PickupCommitment time.Time
	CreatedAt        time.Time
}

// QuoteRecord is a stored quote together with the request it priced and the
// shipper it is attributed to, as listed on the operations dashboard.
type QuoteRecord struct {
	Quote   Quote
	Request QuoteRequest
	Shipper *Shipper
}
