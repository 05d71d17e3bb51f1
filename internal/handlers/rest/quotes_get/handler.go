package quotes_get

import (
	"encoding/json"
	"net/http"

	"service/internal/handlers/rest/dto"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListQuotes(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.QuoteListResponse{
		Quotes: make([]dto.QuoteRecord, 0, len(records)),
	}
	for i := range records {
		response.Quotes = append(response.Quotes, dto.FromQuoteRecord(&records[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
