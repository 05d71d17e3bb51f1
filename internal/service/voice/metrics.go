package voice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TurnsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "voice_turns_total",
		Help: "Total number of voice webhook turns, by dialog stage",
	},
	[]string{"stage"},
)

// stageLabel caps label cardinality: the stage comes from a caller-controlled
// query parameter, so anything unrecognized is folded into one bucket.
func stageLabel(stage Stage) string {
	switch stage {
	case StageMenu, StageMenuSelection, StageQuoteOrigin, StageQuoteDestination,
		StageQuoteWeight, StageQuoteService, StageTrackInput:
		return string(stage)
	}
	return "unknown"
}
