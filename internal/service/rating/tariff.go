package rating

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"service/internal/entities"
)

// Tariff holds the pricing coefficients. Pricing is policy, not protocol:
// everything here is configuration, the engine only enforces the quoting
// contract (decomposition, monotonicity, pickup commitment).
type Tariff struct {
	FuelSurchargePct float64 `yaml:"fuel_surcharge_pct"`
	MinimumCharge    float64 `yaml:"minimum_charge"`
	PerPalletCharge  float64 `yaml:"per_pallet_charge"`

	// ClassStepPct is the linehaul increase per NMFC class ordinal, so higher
	// classes always rate higher on the same lane and weight.
	ClassStepPct float64 `yaml:"class_step_pct"`

	// LaneStepPct is the linehaul increase per lane zone crossed.
	LaneStepPct float64 `yaml:"lane_step_pct"`

	PickupCutoffHour int `yaml:"pickup_cutoff_hour"`

	AccessorialFees AccessorialFees                         `yaml:"accessorial_fees"`
	Services        map[entities.ServiceLevel]ServiceTariff `yaml:"services"`
}

type AccessorialFees struct {
	LiftGatePickup      float64 `yaml:"lift_gate_pickup"`
	LiftGateDelivery    float64 `yaml:"lift_gate_delivery"`
	ResidentialPickup   float64 `yaml:"residential_pickup"`
	ResidentialDelivery float64 `yaml:"residential_delivery"`
	InsideDelivery      float64 `yaml:"inside_delivery"`
}

type ServiceTariff struct {
	Carrier           string  `yaml:"carrier"`
	RatePerLb         float64 `yaml:"rate_per_lb"`
	TransitAdjustDays int     `yaml:"transit_adjust_days"`
	PickupLeadDays    int     `yaml:"pickup_lead_days"`
}

func DefaultTariff() *Tariff {
	return &Tariff{
		FuelSurchargePct: 0.18,
		MinimumCharge:    95.00,
		PerPalletCharge:  14.50,
		ClassStepPct:     0.06,
		LaneStepPct:      0.15,
		PickupCutoffHour: 14,
		AccessorialFees: AccessorialFees{
			LiftGatePickup:      45.00,
			LiftGateDelivery:    45.00,
			ResidentialPickup:   55.00,
			ResidentialDelivery: 55.00,
			InsideDelivery:      75.00,
		},
		Services: map[entities.ServiceLevel]ServiceTariff{
			entities.ServiceStandard: {
				Carrier:           "Velocity Ground",
				RatePerLb:         0.32,
				TransitAdjustDays: 0,
				PickupLeadDays:    1,
			},
			entities.ServiceExpedited: {
				Carrier:           "Summit Expedited",
				RatePerLb:         0.41,
				TransitAdjustDays: -1,
				PickupLeadDays:    0,
			},
			entities.ServiceExpress: {
				Carrier:           "Apex Express Freight",
				RatePerLb:         0.55,
				TransitAdjustDays: -2,
				PickupLeadDays:    0,
			},
		},
	}
}

// LoadTariff reads a yaml tariff document. An empty path selects the built-in
// default tariff.
func LoadTariff(path string) (*Tariff, error) {
	if path == "" {
		return DefaultTariff(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tariff %q: %w", path, err)
	}

	tariff := DefaultTariff()
	if err := yaml.Unmarshal(raw, tariff); err != nil {
		return nil, fmt.Errorf("parse tariff %q: %w", path, err)
	}

	if err := tariff.validate(); err != nil {
		return nil, fmt.Errorf("tariff %q: %w", path, err)
	}
	return tariff, nil
}

func (t *Tariff) validate() error {
	if t.FuelSurchargePct < 0 {
		return fmt.Errorf("fuel_surcharge_pct must not be negative")
	}
	if t.ClassStepPct < 0 {
		return fmt.Errorf("class_step_pct must not be negative")
	}
	if t.LaneStepPct < 0 {
		return fmt.Errorf("lane_step_pct must not be negative")
	}
	if t.PickupCutoffHour < 0 || t.PickupCutoffHour > 23 {
		return fmt.Errorf("pickup_cutoff_hour must be an hour of day")
	}
	// A cutoff past the end-of-business commitment hour would allow same-day
	// commitments already in the past for quotes created between the two.
	if t.PickupCutoffHour > commitmentHour {
		return fmt.Errorf("pickup_cutoff_hour must not be later than the %d:00 commitment hour", commitmentHour)
	}
	for _, level := range []entities.ServiceLevel{
		entities.ServiceStandard, entities.ServiceExpedited, entities.ServiceExpress,
	} {
		svc, ok := t.Services[level]
		if !ok {
			return fmt.Errorf("service %q is missing", level)
		}
		if svc.Carrier == "" {
			return fmt.Errorf("service %q has no carrier", level)
		}
		if svc.RatePerLb <= 0 {
			return fmt.Errorf("service %q rate_per_lb must be positive", level)
		}
	}
	return nil
}
