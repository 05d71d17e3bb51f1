package rating

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
)

const (
	referencePrefix = "VL-"
	referenceLength = 10

	// commitmentHour is the end-of-business hour the carrier commits to
	// collect by on the committed pickup day.
	commitmentHour = 18
)

// Engine turns a validated quote request into a priced, carrier-assigned,
// time-bound quote. Pure with respect to the request; the wall clock and the
// reference source are its only external inputs, injected so tests can pin
// them. Both channels quote through the same engine, so the same request
// always prices identically within one tariff.
type Engine struct {
	tariff *Tariff
	now    func() time.Time
	newRef func() string
}

// New builds an engine over tariff. Passing nil for now or newRef selects the
// production clock and reference source.
func New(tariff *Tariff, now func() time.Time, newRef func() string) *Engine {
	if now == nil {
		now = time.Now
	}
	if newRef == nil {
		newRef = NewReference
	}
	return &Engine{
		tariff: tariff,
		now:    now,
		newRef: newRef,
	}
}

func (e *Engine) Quote(request entities.QuoteRequest) (entities.Quote, error) {
	if err := validateRequest(request); err != nil {
		return entities.Quote{}, err
	}

	svc := e.tariff.Services[request.ServiceLevel]
	laneSpan := laneSpan(request.OriginPostalCode, request.DestinationPostalCode)

	baseRate := e.baseRate(request, svc, laneSpan)
	fuelSurcharge := roundCents(baseRate * e.tariff.FuelSurchargePct)
	accessorials := e.accessorialsTotal(request.Accessorials)
	total := roundCents(baseRate + fuelSurcharge + accessorials)

	createdAt := e.now().UTC()

	return entities.Quote{
		Reference:        e.newRef(),
		Carrier:          svc.Carrier,
		BaseRate:         baseRate,
		FuelSurcharge:    fuelSurcharge,
		Accessorials:     accessorials,
		Total:            total,
		TransitDays:      transitDays(laneSpan, svc),
		PickupCommitment: e.pickupCommitment(createdAt, svc),
		CreatedAt:        createdAt,
	}, nil
}

func (e *Engine) baseRate(request entities.QuoteRequest, svc ServiceTariff, laneSpan int) float64 {
	classMultiplier := 1 + e.tariff.ClassStepPct*float64(request.FreightClass.Ordinal())
	laneMultiplier := 1 + e.tariff.LaneStepPct*float64(laneSpan)

	linehaul := request.WeightLbs*svc.RatePerLb*classMultiplier*laneMultiplier +
		float64(request.PalletCount)*e.tariff.PerPalletCharge

	return roundCents(math.Max(e.tariff.MinimumCharge, linehaul))
}

func (e *Engine) accessorialsTotal(flags entities.Accessorials) float64 {
	fees := e.tariff.AccessorialFees

	var total float64
	if flags.LiftGatePickup {
		total += fees.LiftGatePickup
	}
	if flags.LiftGateDelivery {
		total += fees.LiftGateDelivery
	}
	if flags.ResidentialPickup {
		total += fees.ResidentialPickup
	}
	if flags.ResidentialDelivery {
		total += fees.ResidentialDelivery
	}
	if flags.InsideDelivery {
		total += fees.InsideDelivery
	}
	return roundCents(total)
}

func transitDays(laneSpan int, svc ServiceTariff) int {
	base := 1 + laneSpan/2

	days := base + svc.TransitAdjustDays
	if days < 1 {
		days = 1
	}
	return days
}

// pickupCommitment returns the end-of-business timestamp of the committed
// pickup day: same day when the service has no lead time and the quote lands
// before the cutoff hour, otherwise lead business days out (at least one).
// Always strictly after createdAt.
func (e *Engine) pickupCommitment(createdAt time.Time, svc ServiceTariff) time.Time {
	day := createdAt
	if svc.PickupLeadDays > 0 || createdAt.Hour() >= e.tariff.PickupCutoffHour {
		lead := svc.PickupLeadDays
		if lead == 0 {
			lead = 1
		}
		day = addBusinessDays(createdAt, lead)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), commitmentHour, 0, 0, 0, time.UTC)
}

func addBusinessDays(from time.Time, days int) time.Time {
	result := from
	for added := 0; added < days; {
		result = result.AddDate(0, 0, 1)
		if isBusinessDay(result) {
			added++
		}
	}
	return result
}

func isBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// laneSpan derives a deterministic 0..9 distance proxy from the postal codes.
// Postal codes are free-form alphanumeric, so non-digit leads fold onto the
// same zone range instead of failing.
func laneSpan(origin, destination string) int {
	span := zone(destination) - zone(origin)
	if span < 0 {
		span = -span
	}
	return span
}

func zone(postalCode string) int {
	trimmed := strings.TrimSpace(postalCode)
	if trimmed == "" {
		return 0
	}

	lead := trimmed[0]
	if lead >= '0' && lead <= '9' {
		return int(lead - '0')
	}
	return int(lead) % 10
}

// NewReference issues a high-entropy quote reference. UUID-backed rather than
// a counter so references survive process restarts without collisions.
func NewReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s%s", referencePrefix, raw[:referenceLength])
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
