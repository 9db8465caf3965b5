package problems_get

import (
	"net/http"

	"fastfeet/internal/handlers/rest/converter"
	"fastfeet/internal/handlers/rest/response"
)

const msgNoProblems = "Nenhuma entrega com problema"

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
	problems, err := h.service.ListProblems(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if len(problems) == 0 {
		response.Message(w, h.log, http.StatusNotFound, msgNoProblems)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converter.NewProblemsWithOrder(problems))
}
