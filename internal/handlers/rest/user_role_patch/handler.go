package user_role_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcelservice/internal/entities"
	"parcelservice/internal/handlers/rest/dto"
	"parcelservice/internal/service/agent"
	"parcelservice/internal/service/user"
	"parcelservice/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	agents  AgentDirectory
}

func New(log handlerLogger, service Service, agents AgentDirectory) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		agents:  agents,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var roleUpdateDTO dto.UserRoleUpdate
	err := json.NewDecoder(r.Body).Decode(&roleUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userEntity, err := h.service.UpdateRole(r.Context(), email, entities.UserRoleType(roleUpdateDTO.Role))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if roleUpdateDTO.Availability != nil {
		availability := entities.AgentAvailabilityType(*roleUpdateDTO.Availability)
		err = h.agents.SetAvailability(r.Context(), email, availability)
		if err != nil {
			switch {
			case errors.Is(err, agent.ErrInvalidEmail),
				errors.Is(err, agent.ErrInvalidAvailability):
				w.WriteHeader(http.StatusBadRequest)
			case errors.Is(err, agent.ErrAgentNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}
	}

	userDTO := dto.User{
		ID:        userEntity.ID,
		Email:     userEntity.Email,
		Role:      userEntity.Role.String(),
		CreatedAt: userEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
