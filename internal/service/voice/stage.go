package voice

// Stage identifies which dialog turn an incoming webhook belongs to. It is
// round-tripped through the action URL's stage query parameter, so every
// value must stay URL-safe.
type Stage string

const (
	StageMenu             Stage = "menu"
	StageMenuSelection    Stage = "menuSelection"
	StageQuoteOrigin      Stage = "quote_origin"
	StageQuoteDestination Stage = "quote_destination"
	StageQuoteWeight      Stage = "quote_weight"
	StageQuoteService     Stage = "quote_service"
	StageTrackInput       Stage = "track_input"
)

// ParseStage maps the webhook's stage parameter to a Stage. An absent
// parameter means the call just connected, which is the main menu. Unknown
// values are kept as-is and handled by the machine's fallback turn.
func ParseStage(raw string) Stage {
	if raw == "" {
		return StageMenu
	}
	return Stage(raw)
}
