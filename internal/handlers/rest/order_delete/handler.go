package order_delete

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	cancelled, err := h.service.CancelOrder(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("order_id", cancelled.ID),
	).Info("order cancelled")

	response.Message(w, h.log, http.StatusOK, msgCancelled)
}
