package voice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AlekSi/pointer"

	"service/internal/entities"
	"service/internal/service/shipment"
)

const (
	menuPrompt        = "Velocity Logistics. For a new freight quote, press or say 1. To track an existing shipment, press or say 2."
	originPrompt      = "Please enter the five digit origin zip code."
	destinationPrompt = "Please enter the five digit destination zip code."
	weightPrompt      = "Enter the total shipment weight in pounds."
	servicePrompt     = "For standard service press 1. Expedited press 2. Express press 3."
	trackingPrompt    = "Please enter or say your shipment tracking number."

	closingLine = "Thank you for calling Velocity Logistics."

	menuTimeoutSeconds  = 5
	inputTimeoutSeconds = 6

	menuDigits     = 1
	zipDigits      = 5
	serviceDigits  = 1
	trackingDigits = 12

	// Pallet count is derived from weight for phone quotes; callers are not
	// asked for it. Voice quotes also always rate at the default class.
	lbsPerPallet = 1200
)

var serviceSelections = map[byte]entities.ServiceLevel{
	'1': entities.ServiceStandard,
	'2': entities.ServiceExpedited,
	'3': entities.ServiceExpress,
}

// Input is one webhook turn: the call it belongs to, the stage the previous
// response pointed at, and whatever the caller keyed or said.
type Input struct {
	CallID string
	Stage  Stage
	Digits string
	Speech string
}

// Machine drives the phone dialog. Each Turn consumes one webhook and returns
// the directives for the response; collected quote fields live in the session
// store between turns.
type Machine struct {
	quoteService    QuoteService
	shipmentService ShipmentService
	sessions        SessionStore
}

func New(quoteService QuoteService, shipmentService ShipmentService, sessions SessionStore) *Machine {
	return &Machine{
		quoteService:    quoteService,
		shipmentService: shipmentService,
		sessions:        sessions,
	}
}

// Turn advances the dialog by one webhook. A returned error means the turn
// could not be served (rating or lookup infrastructure failed); the session
// is kept so the caller can retry from the menu.
func (m *Machine) Turn(ctx context.Context, input Input) ([]Directive, error) {
	TurnsTotal.WithLabelValues(stageLabel(input.Stage)).Inc()

	session := m.sessions.Get(ctx, input.CallID)
	numeric := NormalizeDigits(input.Digits, input.Speech)

	switch input.Stage {
	case StageMenu:
		return []Directive{
			Gather{
				Next:           StageMenuSelection,
				Text:           menuPrompt,
				NumDigits:      menuDigits,
				TimeoutSeconds: menuTimeoutSeconds,
			},
			Redirect{Next: StageMenu},
		}, nil

	case StageMenuSelection:
		switch numeric {
		case "1":
			return gatherOrRetry(StageQuoteOrigin, originPrompt, zipDigits), nil
		case "2":
			return gatherOrRetry(StageTrackInput, trackingPrompt, trackingDigits), nil
		}
		return []Directive{
			Say{Text: "Sorry, I did not understand."},
			Redirect{Next: StageMenu},
		}, nil

	case StageQuoteOrigin:
		if numeric == "" {
			return []Directive{
				Say{Text: "I did not catch that origin zip code."},
				Redirect{Next: StageMenu},
			}, nil
		}
		m.sessions.Update(ctx, input.CallID, func(s entities.CallSession) entities.CallSession {
			s.OriginPostalCode = pointer.To(numeric)
			return s
		})
		return gatherOrRetry(StageQuoteDestination, destinationPrompt, zipDigits), nil

	case StageQuoteDestination:
		if numeric == "" {
			// Unlike the other prompts this one retries itself instead of
			// falling back to the menu, keeping the collected origin.
			return []Directive{
				Say{Text: "I did not catch that destination zip code."},
				Redirect{Next: StageQuoteDestination},
			}, nil
		}
		m.sessions.Update(ctx, input.CallID, func(s entities.CallSession) entities.CallSession {
			s.DestinationPostalCode = pointer.To(numeric)
			return s
		})
		return gatherOrRetry(StageQuoteWeight, weightPrompt, 0), nil

	case StageQuoteWeight:
		weight, err := strconv.Atoi(numeric)
		if numeric == "" || err != nil {
			return []Directive{
				Say{Text: "Weight not received. Returning to main menu."},
				Redirect{Next: StageMenu},
			}, nil
		}
		m.sessions.Update(ctx, input.CallID, func(s entities.CallSession) entities.CallSession {
			s.WeightLbs = pointer.To(weight)
			return s
		})
		return gatherOrRetry(StageQuoteService, servicePrompt, serviceDigits), nil

	case StageQuoteService:
		return m.quoteTurn(ctx, input.CallID, session, numeric)

	case StageTrackInput:
		return m.trackTurn(ctx, input.CallID, numeric)
	}

	return []Directive{
		Say{Text: "Transferring to the main menu."},
		Redirect{Next: StageMenu},
	}, nil
}

func (m *Machine) quoteTurn(ctx context.Context, callID string, session entities.CallSession, numeric string) ([]Directive, error) {
	var service entities.ServiceLevel
	if numeric != "" {
		service = serviceSelections[numeric[0]]
	}

	if service == "" || !session.ReadyForQuote() {
		return []Directive{
			Say{Text: "Unable to complete quote. Returning to main menu."},
			Redirect{Next: StageMenu},
		}, nil
	}

	weight := *session.WeightLbs
	request := entities.QuoteRequest{
		OriginPostalCode:      *session.OriginPostalCode,
		DestinationPostalCode: *session.DestinationPostalCode,
		WeightLbs:             float64(weight),
		PalletCount:           int(math.Max(1, math.Round(float64(weight)/lbsPerPallet))),
		ServiceLevel:          service,
		FreightClass:          entities.DefaultVoiceFreightClass,
	}

	quote, err := m.quoteService.CreateQuote(ctx, request, nil)
	if err != nil {
		return nil, fmt.Errorf("create voice quote: %w", err)
	}

	m.sessions.Delete(ctx, callID)

	return []Directive{
		Say{Text: fmt.Sprintf(
			"Your %s quote with %s is %.2f dollars. Transit time %d days. Reference %s.",
			service, quote.Carrier, quote.Total, quote.TransitDays, quote.Reference,
		)},
		Say{Text: "We have also sent the quote to the operations portal. " + closingLine},
		Hangup{},
	}, nil
}

func (m *Machine) trackTurn(ctx context.Context, callID, numeric string) ([]Directive, error) {
	if numeric == "" {
		return []Directive{
			Say{Text: "Tracking number not received. Returning to main menu."},
			Redirect{Next: StageMenu},
		}, nil
	}

	found, err := m.shipmentService.GetShipment(ctx, numeric)
	if errors.Is(err, shipment.ErrShipmentNotFound) {
		return []Directive{
			Say{Text: "Shipment not found. Please verify the tracking number."},
			Redirect{Next: StageMenu},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("track shipment: %w", err)
	}

	m.sessions.Delete(ctx, callID)

	return []Directive{
		Say{Text: trackingSummary(found)},
		Say{Text: closingLine},
		Hangup{},
	}, nil
}

func trackingSummary(s *entities.Shipment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shipment %s for %s is currently %s. ", s.TrackingNumber, s.CustomerName, s.Status)
	if latest := s.LatestMilestone(); latest != nil {
		fmt.Fprintf(&b, "Last update %s at %s. ",
			latest.Timestamp.UTC().Format("1/2/2006, 3:04:05 PM"), latest.Location)
	}
	fmt.Fprintf(&b, "Estimated delivery %s.", s.ETA.UTC().Format("1/2/2006"))
	return b.String()
}

func gatherOrRetry(next Stage, prompt string, numDigits int) []Directive {
	return []Directive{
		Gather{
			Next:           next,
			Text:           prompt,
			NumDigits:      numDigits,
			TimeoutSeconds: inputTimeoutSeconds,
		},
		Redirect{Next: next},
	}
}
