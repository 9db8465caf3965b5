package problem_put

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/handlers/rest/converter"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	var problemDTO dto.ProblemModify
	err = json.NewDecoder(r.Body).Decode(&problemDTO)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MsgValidation)
		return
	}

	updated, err := h.service.UpdateProblem(r.Context(), id, problemDTO.Description)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converter.NewProblem(*updated))
}
