package rating

import "errors"

var (
	ErrMissingOrigin       = errors.New("origin postal code is required")
	ErrMissingDestination  = errors.New("destination postal code is required")
	ErrInvalidWeight       = errors.New("weight must be positive")
	ErrInvalidPalletCount  = errors.New("pallet count must be positive")
	ErrInvalidFreightClass = errors.New("unrecognized freight class")
	ErrInvalidServiceLevel = errors.New("unrecognized service level")
)
