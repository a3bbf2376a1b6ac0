package agents_get

import (
	"encoding/json"
	"net/http"

	"parcelservice/internal/handlers/rest/dto"
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
	agentEntities, err := h.service.GetAgents(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	agentDTOs := make([]dto.Agent, 0, len(agentEntities))
	for _, a := range agentEntities {
		agentDTOs = append(agentDTOs, dto.Agent{
			ID:           a.ID,
			Email:        a.Email,
			Name:         a.Name,
			Phone:        a.Phone,
			Availability: a.Availability.String(),
			AppliedAt:    a.AppliedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(agentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
