package manage_timeslots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/service/timeslots"
	"github.com/rpires71/PK-BookingService/internal/service/timeslots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgNotFound           = "слот времени не найден"
	msgForbidden          = "доступ запрещен"
	msgDuplicateTime      = "слот на это время уже существует"
	msgSlotInUse          = "слот нельзя удалить: на него есть бронирования"
	msgInvalidSlot        = "некорректные параметры слота"
)

type Handler struct {
	service TimeSlotService
	logger  Logger
}

func NewHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/timeslots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester, _ = middleware.GetRequester(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /timeslots", err)
		return
	}

	h.logger.Info("POST /timeslots - Time slot created: slot_id=%d, time=%s", result.ID, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/timeslots/{timeslotId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "GET /timeslots/{timeslotId}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /timeslots/{timeslotId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/v1/timeslots/{timeslotId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "PATCH /timeslots/{timeslotId}")
	if !ok {
		return
	}

	var req models.UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /timeslots/{timeslotId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester, _ = middleware.GetRequester(r.Context())

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /timeslots/{timeslotId}", err)
		return
	}

	h.logger.Info("PATCH /timeslots/{timeslotId} - Time slot updated: slot_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/timeslots/{timeslotId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "DELETE /timeslots/{timeslotId}")
	if !ok {
		return
	}

	requester, _ := middleware.GetRequester(r.Context())

	if err := h.service.Delete(r.Context(), requester, id); err != nil {
		h.respondError(w, "DELETE /timeslots/{timeslotId}", err)
		return
	}

	h.logger.Info("DELETE /timeslots/{timeslotId} - Time slot deleted: slot_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) slotID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["timeslotId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid slot ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, timeslots.ErrSlotNotFound):
		h.logger.Warn("%s - Time slot not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, timeslots.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", op)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, timeslots.ErrDuplicateTime):
		h.logger.Warn("%s - Duplicate slot time", op)
		handlers.RespondConflict(w, msgDuplicateTime)

	case errors.Is(err, timeslots.ErrSlotInUse):
		h.logger.Warn("%s - Slot has bookings", op)
		handlers.RespondConflict(w, msgSlotInUse)

	case errors.Is(err, timeslots.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidSlot)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
