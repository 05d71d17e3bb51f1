package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/handlers/rest/dto"
	"service/internal/service/shipment"
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

// ServeHTTP answers a single shipment when the tracking query parameter is
// present and the full board otherwise.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingNumber := r.URL.Query().Get("tracking")
	if trackingNumber != "" {
		h.serveOne(w, r, trackingNumber)
		return
	}

	shipments, err := h.service.ListShipments(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ShipmentListResponse{
		Shipments: make([]dto.Shipment, 0, len(shipments)),
	}
	for i := range shipments {
		response.Shipments = append(response.Shipments, dto.FromShipment(&shipments[i]))
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) serveOne(w http.ResponseWriter, r *http.Request, trackingNumber string) {
	found, err := h.service.GetShipment(r.Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			h.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Shipment not found"})
		case errors.Is(err, shipment.ErrInvalidTrackingNumber):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tracking number"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.ShipmentResponse{Shipment: dto.FromShipment(found)})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
