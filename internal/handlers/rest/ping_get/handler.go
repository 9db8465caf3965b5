package ping_get

import (
	"net/http"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/handlers/rest/response"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
