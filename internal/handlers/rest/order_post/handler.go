package order_post

import (
	"encoding/json"
	"net/http"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/service/order"
)

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), order.CreateCommand{
		RecipientID: orderCreateDTO.RecipientID,
		DelivererID: orderCreateDTO.DelivererID,
		Product:     orderCreateDTO.Product,
		SignatureID: orderCreateDTO.SignatureID,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.OrderCreateResponse{
		ID:          created.ID,
		RecipientID: created.RecipientID,
		DelivererID: created.DelivererID,
		Product:     created.Product,
	})
}
