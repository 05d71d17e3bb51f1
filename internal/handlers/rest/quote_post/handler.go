package quote_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/quote"
	"service/internal/service/rating"
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
	var quoteCreateDTO dto.QuoteCreate
	err := json.NewDecoder(r.Body).Decode(&quoteCreateDTO)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if message, ok := validateShipper(&quoteCreateDTO); !ok {
		writeError(w, h.log, http.StatusBadRequest, message)
		return
	}

	request := entities.QuoteRequest{
		OriginPostalCode:      quoteCreateDTO.OriginPostalCode,
		DestinationPostalCode: quoteCreateDTO.DestinationPostalCode,
		WeightLbs:             quoteCreateDTO.WeightLbs,
		PalletCount:           quoteCreateDTO.PalletCount,
		ServiceLevel:          entities.ServiceLevel(quoteCreateDTO.ServiceLevel),
		FreightClass:          entities.FreightClass(quoteCreateDTO.FreightClass),
		Accessorials: entities.Accessorials{
			LiftGatePickup:      quoteCreateDTO.LiftGatePickup,
			LiftGateDelivery:    quoteCreateDTO.LiftGateDelivery,
			ResidentialPickup:   quoteCreateDTO.ResidentialPickup,
			ResidentialDelivery: quoteCreateDTO.ResidentialDelivery,
			InsideDelivery:      quoteCreateDTO.InsideDelivery,
		},
	}
	shipper := &entities.Shipper{
		Company:      quoteCreateDTO.Company,
		ContactName:  quoteCreateDTO.ContactName,
		ContactEmail: quoteCreateDTO.ContactEmail,
		ContactPhone: quoteCreateDTO.ContactPhone,
	}

	quoteEntity, err := h.service.CreateQuote(r.Context(), request, shipper)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrMissingOrigin),
			errors.Is(err, rating.ErrMissingDestination),
			errors.Is(err, rating.ErrInvalidWeight),
			errors.Is(err, rating.ErrInvalidPalletCount),
			errors.Is(err, rating.ErrInvalidFreightClass),
			errors.Is(err, rating.ErrInvalidServiceLevel):
			writeError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, quote.ErrConflict):
			writeError(w, h.log, http.StatusConflict, "quote reference already exists")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuoteCreateResponse{
		Quote: dto.FromQuote(quoteEntity),
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

func validateShipper(quoteCreateDTO *dto.QuoteCreate) (string, bool) {
	switch {
	case strings.TrimSpace(quoteCreateDTO.Company) == "":
		return "company is required", false
	case strings.TrimSpace(quoteCreateDTO.ContactName) == "":
		return "contactName is required", false
	case strings.TrimSpace(quoteCreateDTO.ContactEmail) == "" ||
		!strings.Contains(quoteCreateDTO.ContactEmail, "@"):
		return "contactEmail must be a valid email", false
	case strings.TrimSpace(quoteCreateDTO.ContactPhone) == "":
		return "contactPhone is required", false
	}
	return "", true
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
