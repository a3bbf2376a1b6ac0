package parcels_assigned_get

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
	identity, _ := auth.IdentityFromContext(r.Context())

	email := r.URL.Query().Get("email")
	if email == "" {
		email = identity.Email
	}

	// An agent reads its own feed only; an admin may query any agent.
	if identity.Role != entities.RoleAdmin && email != identity.Email {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	parcelEntities, err := h.service.GetOpenParcelsByAgent(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTOs := dto.ParcelListFromEntities(parcelEntities)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
