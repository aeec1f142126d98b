package get_timeslots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/service/timeslots/models"
	getAvailability "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
)

type fakeService struct {
	ListFunc func(ctx context.Context, onlyActive bool) (*models.TimeSlotListResponse, error)
}

func (f *fakeService) List(ctx context.Context, onlyActive bool) (*models.TimeSlotListResponse, error) {
	return f.ListFunc(ctx, onlyActive)
}

type fakeAvailability struct {
	ExecuteFunc func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

func (f *fakeAvailability) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	return f.ExecuteFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(svc *fakeService, availability *fakeAvailability, target string, headers map[string]string) *httptest.ResponseRecorder {
	handler := NewHandler(svc, availability, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	middleware.Identity(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandleListTimeSlots(t *testing.T) {
	var gotOnlyActive bool
	svc := &fakeService{
		ListFunc: func(ctx context.Context, onlyActive bool) (*models.TimeSlotListResponse, error) {
			gotOnlyActive = onlyActive
			return &models.TimeSlotListResponse{
				TimeSlots: []models.TimeSlotResponse{
					{ID: 1, Time: "12:00", EffectiveCapacity: 40, IsActive: true},
				},
			}, nil
		},
	}

	rec := serve(svc, &fakeAvailability{}, "/api/v1/timeslots", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOnlyActive)
}

func TestHandleListIncludeInactiveStaffOnly(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		wantOnlyActive bool
	}{
		{name: "staffSeesInactive", headers: map[string]string{"X-User-Role": "staff"}, wantOnlyActive: false},
		{name: "guestIgnored", headers: nil, wantOnlyActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOnlyActive bool
			svc := &fakeService{
				ListFunc: func(ctx context.Context, onlyActive bool) (*models.TimeSlotListResponse, error) {
					gotOnlyActive = onlyActive
					return &models.TimeSlotListResponse{TimeSlots: []models.TimeSlotResponse{}}, nil
				},
			}

			rec := serve(svc, &fakeAvailability{}, "/api/v1/timeslots?includeInactive=true", tt.headers)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantOnlyActive, gotOnlyActive)
		})
	}
}

func TestHandleTimeSlotsForDate(t *testing.T) {
	availability := &fakeAvailability{
		ExecuteFunc: func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
			assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), req.Date)
			return &getAvailability.Response{
				Date: req.Date,
				Slots: []getAvailability.Slot{
					{TimeSlotID: 1, Time: "12:00", Capacity: 40, Booked: 12, Remaining: 28, Available: true},
					{TimeSlotID: 2, Time: "19:30", Capacity: 20, Booked: 22, Remaining: -2, Available: false},
				},
			}, nil
		},
	}

	rec := serve(&fakeService{}, availability, "/api/v1/timeslots?date=2026-03-15", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TimeSlotsForDateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-15", resp.Date)
	require.Len(t, resp.TimeSlots, 2)
	assert.Equal(t, 28, resp.TimeSlots[0].RemainingCapacity)
	assert.Equal(t, -2, resp.TimeSlots[1].RemainingCapacity)
}

func TestHandleTimeSlotsForDateBadDate(t *testing.T) {
	rec := serve(&fakeService{}, &fakeAvailability{}, "/api/v1/timeslots?date=15.03.2026", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
