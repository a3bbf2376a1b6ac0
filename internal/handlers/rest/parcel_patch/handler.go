package parcel_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcelservice/internal/entities"
	"parcelservice/internal/handlers/rest/dto"
	"parcelservice/internal/service/parcel"
	"parcelservice/pkg/logger"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var parcelUpdateDTO dto.ParcelUpdate
	err = json.NewDecoder(r.Body).Decode(&parcelUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModifyEntity := entities.ParcelModify{
		ID:         &id,
		AgentEmail: parcelUpdateDTO.AgentEmail,
		AgentName:  parcelUpdateDTO.AgentName,
		AgentPhone: parcelUpdateDTO.AgentPhone,
	}
	if parcelUpdateDTO.Status != nil {
		status := entities.ParcelStatusType(*parcelUpdateDTO.Status)
		parcelModifyEntity.Status = &status
	}
	if parcelUpdateDTO.ParcelType != nil {
		parcelType := entities.ParcelSizeType(*parcelUpdateDTO.ParcelType)
		parcelModifyEntity.ParcelType = &parcelType
	}
	if parcelUpdateDTO.PaymentType != nil {
		paymentType := entities.PaymentType(*parcelUpdateDTO.PaymentType)
		parcelModifyEntity.PaymentType = &paymentType
	}

	parcelEntity, err := h.service.UpdateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	parcelDTO := dto.ParcelFromEntity(*parcelEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, parcel.ErrInvalidParcelID),
		errors.Is(err, parcel.ErrMissingRequiredFields),
		errors.Is(err, parcel.ErrInvalidStatus),
		errors.Is(err, parcel.ErrInvalidParcelType),
		errors.Is(err, parcel.ErrInvalidPaymentType),
		errors.Is(err, parcel.ErrInvalidEmail),
		errors.Is(err, parcel.ErrAgentRequired),
		errors.Is(err, parcel.ErrAgentNotAllowed):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, parcel.ErrParcelNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, parcel.ErrInvalidTransition):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
