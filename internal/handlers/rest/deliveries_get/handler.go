package deliveries_get

import (
	"net/http"
	"strconv"

	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/converter"
	"fastfeet/internal/handlers/rest/response"

	"github.com/gorilla/mux"
)

var emptyMessages = map[entities.DeliveryStatus]string{
	entities.DeliveryPending:   "Nenhuma entrega cadastrada",
	entities.DeliveryCompleted: "Nenhuma entrega concluída",
}

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

// ServeHTTP без ?status отдаёт незавершённые доставки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	delivererID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	status := entities.DeliveryPending
	if s := r.URL.Query().Get("status"); s != "" {
		status = entities.DeliveryStatus(s)
	}

	orders, err := h.service.ListDeliveries(r.Context(), delivererID, status)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if len(orders) == 0 {
		response.Message(w, h.log, http.StatusNotFound, emptyMessages[status])
		return
	}

	response.JSON(w, h.log, http.StatusOK, converter.NewOrders(orders))
}
