package delivery_complete_put

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fastfeet/internal/generated/dto"
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

	var deliveryDTO dto.DeliveryComplete
	err = json.NewDecoder(r.Body).Decode(&deliveryDTO)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	delivered, err := h.service.RecordDelivery(r.Context(), order.DeliveryCommand{
		OrderID:     id,
		SignatureID: deliveryDTO.SignatureID,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryCompleteResponse{
		ID:          delivered.ID,
		RecipientID: delivered.RecipientID,
		SignatureID: delivered.SignatureID,
		Product:     delivered.Product,
		StartDate:   delivered.StartDate,
		EndDate:     delivered.EndDate,
	})
}
