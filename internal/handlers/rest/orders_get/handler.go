package orders_get

import (
	"net/http"

	"fastfeet/internal/handlers/rest/converter"
	"fastfeet/internal/handlers/rest/response"
)

const msgNoOrders = "Nenhuma encomenda cadastrada"

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
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if len(orders) == 0 {
		response.Message(w, h.log, http.StatusNotFound, msgNoOrders)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converter.NewOrders(orders))
}
