package order_put

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/handlers/rest/converter"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/service/order"

	"github.com/gorilla/mux"
)

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

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	updated, err := h.service.UpdateOrder(r.Context(), order.UpdateCommand{
		OrderID:     id,
		RecipientID: orderUpdateDTO.RecipientID,
		DelivererID: orderUpdateDTO.DelivererID,
		Product:     orderUpdateDTO.Product,
		SignatureID: orderUpdateDTO.SignatureID,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converter.NewOrder(*updated))
}
