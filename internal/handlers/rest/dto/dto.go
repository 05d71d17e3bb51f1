// Package dto holds the JSON shapes of the public REST API. Field names
// match what the operations portal frontend expects.
package dto

import "time"

type Quote struct {
	Reference        string    `json:"reference"`
	Carrier          string    `json:"carrier"`
	BaseRate         float64   `json:"baseRate"`
	FuelSurcharge    float64   `json:"fuelSurcharge"`
	Accessorials     float64   `json:"accessorials"`
	Total            float64   `json:"total"`
	TransitDays      int       `json:"transitDays"`
	PickupCommitment time.Time `json:"pickupCommitment"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Accessorials struct {
	LiftGatePickup      bool `json:"liftGatePickup"`
	LiftGateDelivery    bool `json:"liftGateDelivery"`
	ResidentialPickup   bool `json:"residentialPickup"`
	ResidentialDelivery bool `json:"residentialDelivery"`
	InsideDelivery      bool `json:"insideDelivery"`
}

type QuoteRequest struct {
	OriginPostalCode      string       `json:"originPostalCode"`
	DestinationPostalCode string       `json:"destinationPostalCode"`
	WeightLbs             float64      `json:"weightLbs"`
	PalletCount           int          `json:"palletCount"`
	ServiceLevel          string       `json:"serviceLevel"`
	FreightClass          int          `json:"freightClass"`
	Accessorials          Accessorials `json:"accessorials"`
}

type Shipper struct {
	Company      string `json:"company"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// QuoteCreate is the web quote form payload. The flat accessorial flags
// mirror the form's checkboxes.
type QuoteCreate struct {
	Company      string `json:"company"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	OriginPostalCode      string  `json:"originPostalCode"`
	DestinationPostalCode string  `json:"destinationPostalCode"`
	WeightLbs             float64 `json:"weightLbs"`
	PalletCount           int     `json:"palletCount"`
	ServiceLevel          string  `json:"serviceLevel"`
	FreightClass          int     `json:"freightClass"`

	LiftGatePickup      bool `json:"liftGatePickup"`
	LiftGateDelivery    bool `json:"liftGateDelivery"`
	ResidentialPickup   bool `json:"residentialPickup"`
	ResidentialDelivery bool `json:"residentialDelivery"`
	InsideDelivery      bool `json:"insideDelivery"`
}

type QuoteCreateResponse struct {
	Quote Quote `json:"quote"`
}

// QuoteRecord is one dashboard row: the priced quote with the request it
// answered and, for web quotes, the shipper who asked.
type QuoteRecord struct {
	Quote
	Request QuoteRequest `json:"request"`
	Shipper *Shipper     `json:"shipper,omitempty"`
}

type QuoteListResponse struct {
	Quotes []QuoteRecord `json:"quotes"`
}

type Milestone struct {
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
}

type Shipment struct {
	TrackingNumber        string      `json:"trackingNumber"`
	CustomerName          string      `json:"customerName"`
	Carrier               string      `json:"carrier"`
	OriginPostalCode      string      `json:"originPostalCode"`
	DestinationPostalCode string      `json:"destinationPostalCode"`
	Status                string      `json:"status"`
	ETA                   time.Time   `json:"eta"`
	LastUpdated           time.Time   `json:"lastUpdated"`
	Milestones            []Milestone `json:"milestones"`
}

type ShipmentResponse struct {
	Shipment Shipment `json:"shipment"`
}

type ShipmentListResponse struct {
	Shipments []Shipment `json:"shipments"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
