package entities

// CallSession holds the quote fields collected so far during one phone call,
// keyed by the telephony provider's call id. Fields fill in incrementally,
// one dialog turn at a time.
type CallSession struct {
	OriginPostalCode      *string
	DestinationPostalCode *string
	WeightLbs             *int
}

// ReadyForQuote reports whether enough fields have been collected to build a
// quote request. A zero weight does not count as collected.
func (s CallSession) ReadyForQuote() bool {
	return s.OriginPostalCode != nil &&
		s.DestinationPostalCode != nil &&
		s.WeightLbs != nil && *s.WeightLbs > 0
}
