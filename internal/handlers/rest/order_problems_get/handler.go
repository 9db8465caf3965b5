package order_problems_get

import (
	"net/http"
	"strconv"

	"fastfeet/internal/handlers/rest/converter"
	"fastfeet/internal/handlers/rest/response"

	"github.com/gorilla/mux"
)

const msgNoProblems = "Nenhum problema com a encomenda"

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
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	problems, err := h.service.ListOrderProblems(r.Context(), orderID)
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
