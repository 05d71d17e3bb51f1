package rating

import (
	"strings"

	"service/internal/entities"
)

func validateRequest(request entities.QuoteRequest) error {
	if strings.TrimSpace(request.OriginPostalCode) == "" {
		return ErrMissingOrigin
	}
	if strings.TrimSpace(request.DestinationPostalCode) == "" {
		return ErrMissingDestination
	}
	if request.WeightLbs <= 0 {
		return ErrInvalidWeight
	}
	if request.PalletCount <= 0 {
		return ErrInvalidPalletCount
	}
	if request.FreightClass.Ordinal() < 0 {
		return ErrInvalidFreightClass
	}
	if !isValidServiceLevel(request.ServiceLevel) {
		return ErrInvalidServiceLevel
	}
	return nil
}

func isValidServiceLevel(level entities.ServiceLevel) bool {
	switch level {
	case entities.ServiceStandard, entities.ServiceExpedited, entities.ServiceExpress:
		return true
	default:
		return false
	}
}
