package quote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QuotesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quotes_created_total",
		Help: "Total number of quotes issued, by originating channel",
	},
	[]string{"channel"},
)
