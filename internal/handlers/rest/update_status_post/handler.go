package update_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelservice/internal/entities"
	"parcelservice/internal/handlers/rest/dto"
	"parcelservice/internal/service/parcel"
	"parcelservice/pkg/logger"
)

type Handler struct {
	log         handlerLogger
	service     Service
	broadcaster Broadcaster
}

func New(log handlerLogger, service Service, broadcaster Broadcaster) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		service:     service,
		broadcaster: broadcaster,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var statusUpdateDTO dto.StatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// A bare request is the manual trigger: re-announce state to live
	// viewers without touching any parcel.
	if statusUpdateDTO.ParcelID == 0 && statusUpdateDTO.Status == "" {
		h.broadcaster.BroadcastChanged()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := entities.ParcelStatusType(statusUpdateDTO.Status)
	parcelModifyEntity := entities.ParcelModify{
		ID:         &statusUpdateDTO.ParcelID,
		Status:     &status,
		AgentEmail: statusUpdateDTO.AgentEmail,
		AgentName:  statusUpdateDTO.AgentName,
		AgentPhone: statusUpdateDTO.AgentPhone,
	}

	parcelEntity, err := h.service.UpdateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidStatus),
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
