package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/domain"
	createBooking "github.com/rpires71/PK-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	ExecuteFunc func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return f.ExecuteFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(uc *fakeUseCase, body string, headers map[string]string) *httptest.ResponseRecorder {
	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	middleware.Identity(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateGuestBooking(t *testing.T) {
	var gotReq *createBooking.Request
	uc := &fakeUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			gotReq = req
			return &createBooking.Response{
				ID:          101,
				Reference:   "AB12CD34",
				GuestName:   req.GuestName,
				TimeSlotID:  req.TimeSlotID,
				SlotTime:    "19:30",
				BookingDate: req.Date,
				PartySize:   req.PartySize,
				Status:      string(domain.StatusPending),
				CreatedAt:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	body := `{
		"guestName": "Maria Santos",
		"guestEmail": "maria@example.com",
		"guestPhone": "+351912345678",
		"timeSlotId": 3,
		"bookingDate": "2026-03-15",
		"partySize": 4
	}`
	rec := serve(uc, body, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, gotReq)
	assert.Nil(t, gotReq.UserID)
	require.NotNil(t, gotReq.GuestName)
	assert.Equal(t, "Maria Santos", *gotReq.GuestName)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AB12CD34", resp.Reference)
	assert.Equal(t, "2026-03-15", resp.BookingDate)
	assert.Equal(t, "Pending", resp.Status)
}

func TestHandleCreateUsesIdentityHeader(t *testing.T) {
	var gotReq *createBooking.Request
	uc := &fakeUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			gotReq = req
			return &createBooking.Response{Reference: "AB12CD34", SlotTime: "19:30"}, nil
		},
	}

	body := `{"timeSlotId": 3, "bookingDate": "2026-03-15", "partySize": 2}`
	rec := serve(uc, body, map[string]string{"X-User-ID": "7"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, gotReq.UserID)
	assert.Equal(t, int64(7), *gotReq.UserID)
}

func TestHandleCreateCapacityConflict(t *testing.T) {
	uc := &fakeUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			return nil, domain.NewCapacityError(3)
		},
	}

	body := `{"timeSlotId": 3, "bookingDate": "2026-03-15", "partySize": 6}`
	rec := serve(uc, body, nil)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.AvailableCapacity)
	assert.Equal(t, 3, *resp.AvailableCapacity)
}

func TestHandleCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "slotNotFound", err: createBooking.ErrSlotNotFound, wantCode: http.StatusNotFound},
		{name: "slotInactive", err: createBooking.ErrSlotInactive, wantCode: http.StatusConflict},
		{name: "pastDate", err: createBooking.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "guestContacts", err: createBooking.ErrGuestContactRequired, wantCode: http.StatusBadRequest},
		{name: "duplicate", err: createBooking.ErrDuplicateBooking, wantCode: http.StatusConflict},
		{name: "transient", err: createBooking.ErrTransient, wantCode: http.StatusServiceUnavailable},
		{name: "invalidInput", err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.err
				},
			}

			body := `{"timeSlotId": 3, "bookingDate": "2026-03-15", "partySize": 2}`
			rec := serve(uc, body, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandleCreateBadRequests(t *testing.T) {
	uc := &fakeUseCase{
		ExecuteFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case must not be called")
			return nil, nil
		},
	}

	tests := []struct {
		name    string
		body    string
		headers map[string]string
	}{
		{name: "malformedJSON", body: `{"timeSlotId":`},
		{name: "badDateFormat", body: `{"timeSlotId": 3, "bookingDate": "15/03/2026", "partySize": 2}`},
		{name: "badUserIDHeader", body: `{"timeSlotId": 3, "bookingDate": "2026-03-15", "partySize": 2}`, headers: map[string]string{"X-User-ID": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(uc, tt.body, tt.headers)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
