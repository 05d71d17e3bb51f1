package entities

import "time"

type Milestone struct {
	Timestamp time.Time
	Location  string
	Status    string
	Notes     string
}

type Shipment struct {
	TrackingNumber        string
	CustomerName          string
	Carrier               string
	OriginPostalCode      string
	DestinationPostalCode string
	Status                string
	ETA                   time.Time
	LastUpdated           time.Time

	// Milestones are append-only; insertion order is chronological order.
	Milestones []Milestone
}

// MilestoneEvent is one TMS feed event: a milestone for a tracked shipment,
// optionally carrying a revised delivery estimate.
type MilestoneEvent struct {
	TrackingNumber string
	Milestone      Milestone
	ETA            *time.Time
}

// LatestMilestone returns the most recent milestone, or nil when the shipment
// has none yet.
func (s *Shipment) LatestMilestone() *Milestone {
	if len(s.Milestones) == 0 {
		return nil
	}
	return &s.Milestones[len(s.Milestones)-1]
}
