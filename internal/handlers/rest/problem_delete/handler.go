package problem_delete

import (
	"net/http"
	"strconv"

	"fastfeet/internal/handlers/rest/response"
	"fastfeet/pkg/logger"

	"github.com/gorilla/mux"
)

const msgCancelled = "Encomenda cancelada com sucesso"

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
	problemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	resolution, err := h.service.ResolveByCancellation(r.Context(), problemID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("problem_id", resolution.Problem.ID),
		logger.NewField("order_id", resolution.Order.ID),
	).Info("delivery cancelled by problem")

	response.Message(w, h.log, http.StatusOK, msgCancelled)
}
