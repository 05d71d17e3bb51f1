package shipment

import "errors"

var (
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidMilestone      = errors.New("invalid milestone")

	ErrShipmentNotFound = errors.New("shipment not found")
)
