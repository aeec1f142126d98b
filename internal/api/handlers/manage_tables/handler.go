package manage_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/service/tables"
	"github.com/rpires71/PK-BookingService/internal/service/tables/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTableID     = "некорректный ID столика"
	msgNotFound           = "столик не найден"
	msgForbidden          = "доступ запрещен"
	msgDuplicateNumber    = "столик с таким номером уже существует"
	msgInvalidTable       = "некорректные параметры столика"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/tables
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester, _ = middleware.GetRequester(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /tables", err)
		return
	}

	h.logger.Info("POST /tables - Table created: table_id=%d, number=%d", result.ID, result.TableNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/tables
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("onlyAvailable") == "true"

	result, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.respondError(w, "GET /tables", err)
		return
	}

	h.logger.Info("GET /tables - Retrieved %d tables", len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/tables/{tableId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.tableID(w, r, "GET /tables/{tableId}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /tables/{tableId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/v1/tables/{tableId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.tableID(w, r, "PATCH /tables/{tableId}")
	if !ok {
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{tableId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester, _ = middleware.GetRequester(r.Context())

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /tables/{tableId}", err)
		return
	}

	h.logger.Info("PATCH /tables/{tableId} - Table updated: table_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/tables/{tableId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.tableID(w, r, "DELETE /tables/{tableId}")
	if !ok {
		return
	}

	requester, _ := middleware.GetRequester(r.Context())

	if err := h.service.Delete(r.Context(), requester, id); err != nil {
		h.respondError(w, "DELETE /tables/{tableId}", err)
		return
	}

	h.logger.Info("DELETE /tables/{tableId} - Table deleted: table_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) tableID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid table ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, tables.ErrTableNotFound):
		h.logger.Warn("%s - Table not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, tables.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", op)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, tables.ErrDuplicateNumber):
		h.logger.Warn("%s - Duplicate table number", op)
		handlers.RespondConflict(w, msgDuplicateNumber)

	case errors.Is(err, tables.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTable)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
