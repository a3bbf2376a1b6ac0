package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelservice/internal/entities"
	"parcelservice/internal/handlers/rest/dto"
	"parcelservice/internal/pkg/middlewares/auth"
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
	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ownerEmail := parcelCreateDTO.OwnerEmail
	if ownerEmail == "" {
		if identity, ok := auth.IdentityFromContext(r.Context()); ok {
			ownerEmail = identity.Email
		}
	}

	parcelType := entities.ParcelSizeType(parcelCreateDTO.ParcelType)
	paymentType := entities.PaymentType(parcelCreateDTO.PaymentType)
	parcelModifyEntity := entities.ParcelModify{
		OwnerEmail:      &ownerEmail,
		PickupAddress:   &parcelCreateDTO.PickupAddress,
		DeliveryAddress: &parcelCreateDTO.DeliveryAddress,
		ParcelType:      &parcelType,
		PaymentType:     &paymentType,
	}

	parcelEntity, err := h.service.Book(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidEmail),
			errors.Is(err, parcel.ErrInvalidParcelType),
			errors.Is(err, parcel.ErrInvalidPaymentType),
			errors.Is(err, parcel.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTO := dto.ParcelFromEntity(*parcelEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(parcelDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
