package models

import (
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingmodels "github.com/rpires71/PK-BookingService/internal/service/bookings/models"
)

// BookingsReportRequest запрос списка бронирований ресторана
type BookingsReportRequest struct {
	Requester       domain.Requester
	TimeSlotID      *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	Search          *string
	IncludeInactive bool
}

// BookingsReportResponse список бронирований для персонала
type BookingsReportResponse struct {
	Bookings []bookingmodels.BookingResponse `json:"bookings"`
	Total    int                             `json:"total"`
}

// StatsRequest запрос сводной статистики за период
type StatsRequest struct {
	Requester domain.Requester
	StartDate *time.Time
	EndDate   *time.Time
}

// StatusCountResponse количество бронирований по статусу
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// SlotPopularityResponse нагрузка на слот за период
type SlotPopularityResponse struct {
	TimeSlotID int64  `json:"timeSlotId"`
	Time       string `json:"time"`
	Bookings   int    `json:"bookings"`
	Guests     int    `json:"guests"`
}

// DayCountResponse сводка бронирований за день
type DayCountResponse struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
	Guests   int    `json:"guests"`
}

// StatsResponse сводная статистика бронирований за период
type StatsResponse struct {
	ByStatus []StatusCountResponse    `json:"byStatus"`
	BySlot   []SlotPopularityResponse `json:"bySlot"`
	PerDay   []DayCountResponse       `json:"perDay"`
}

// FromDomainStatusCounts конвертирует статистику по статусам в DTO
func FromDomainStatusCounts(counts []domain.StatusCount) []StatusCountResponse {
	out := make([]StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, StatusCountResponse{
			Status: string(c.Status),
			Count:  c.Count,
		})
	}
	return out
}

// FromDomainSlotPopularity конвертирует статистику по слотам в DTO
func FromDomainSlotPopularity(slots []domain.SlotPopularity) []SlotPopularityResponse {
	out := make([]SlotPopularityResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotPopularityResponse{
			TimeSlotID: s.TimeSlotID,
			Time:       s.Time.String(),
			Bookings:   s.Bookings,
			Guests:     s.Guests,
		})
	}
	return out
}

// FromDomainDayCounts конвертирует статистику по дням в DTO
func FromDomainDayCounts(days []domain.DayCount) []DayCountResponse {
	out := make([]DayCountResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DayCountResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Bookings: d.Bookings,
			Guests:   d.Guests,
		})
	}
	return out
}
