package delivery_pickup_post

import (
	"fmt"
	"net/http"
	"strconv"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/handlers/rest/response"

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

	pickup, err := h.service.RecordPickup(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PickupResponse{
		ID:          pickup.Order.ID,
		RecipientID: pickup.Order.RecipientID,
		Product:     pickup.Order.Product,
		StartDate:   pickup.Order.StartDate,
		Message:     fmt.Sprintf("Retirada %d de %d diárias", pickup.Number, pickup.Limit),
	})
}
