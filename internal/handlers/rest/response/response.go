// Package response пишет JSON-ответы и переводит ошибки сервисов в HTTP-статусы.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/service/order"
	"fastfeet/internal/service/problem"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

const (
	MsgValidation        = "Erro de validação"
	MsgOrderNotFound     = "Encomenda não cadastrada"
	MsgOrderUnavailable  = "Encomenda não cadastrada ou cancelada"
	MsgProblemNotFound   = "Entrega com problema não encontrada"
	MsgDelivererNotFound = "Entregador não cadastrado"
	MsgRecipientNotFound = "Destinatário não cadastrado"
	MsgFileNotFound      = "Arquivo não encontrado"
	MsgInvalidState      = "Encomenda não cadastrada, finalizada ou cancelada"
	MsgAlreadyCancelled  = "Encomenda já cancelada"
	MsgDailyLimit        = "Limite de retiradas diárias atingido"
	MsgInternal          = "Erro interno do servidor"
)

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Message(w http.ResponseWriter, log handlerLogger, status int, message string) {
	JSON(w, log, status, dto.Message{Message: message})
}

// Error неизвестные ошибки логируются и отдаются как 500 без подробностей.
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	var outsideHours *order.OutsideBusinessHoursError
	var dailyLimit *order.DailyLimitExceededError

	switch {
	case errors.Is(err, order.ErrValidation),
		errors.Is(err, problem.ErrValidation):
		Message(w, log, http.StatusBadRequest, MsgValidation)

	case errors.As(err, &outsideHours):
		JSON(w, log, http.StatusUnprocessableEntity, dto.OutsideBusinessHours{
			Message: fmt.Sprintf("Horário inválido, retiradas apenas entre %s e %s", outsideHours.Opens, outsideHours.Closes),
			Opens:   outsideHours.Opens,
			Closes:  outsideHours.Closes,
		})

	case errors.As(err, &dailyLimit):
		JSON(w, log, http.StatusUnprocessableEntity, dto.DailyLimitExceeded{
			Message: MsgDailyLimit,
			Limit:   dailyLimit.Limit,
		})

	case errors.Is(err, problem.ErrOrderNotFound):
		Message(w, log, http.StatusNotFound, MsgOrderUnavailable)
	case errors.Is(err, order.ErrOrderNotFound):
		Message(w, log, http.StatusNotFound, MsgOrderNotFound)
	case errors.Is(err, problem.ErrProblemNotFound):
		Message(w, log, http.StatusNotFound, MsgProblemNotFound)
	case errors.Is(err, order.ErrCourierNotFound):
		Message(w, log, http.StatusNotFound, MsgDelivererNotFound)
	case errors.Is(err, order.ErrRecipientNotFound):
		Message(w, log, http.StatusNotFound, MsgRecipientNotFound)
	case errors.Is(err, order.ErrFileNotFound):
		Message(w, log, http.StatusNotFound, MsgFileNotFound)

	case errors.Is(err, order.ErrAlreadyCancelled):
		Message(w, log, http.StatusConflict, MsgAlreadyCancelled)
	case errors.Is(err, order.ErrInvalidState):
		Message(w, log, http.StatusConflict, MsgInvalidState)

	default:
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		Message(w, log, http.StatusInternalServerError, MsgInternal)
	}
}
