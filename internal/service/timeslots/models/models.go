package models

import (
	"github.com/rpires71/PK-BookingService/internal/domain"
)

// CreateTimeSlotRequest запрос на создание слота времени
type CreateTimeSlotRequest struct {
	Requester   domain.Requester `json:"-"`
	Time        string           `json:"time"`
	MaxCapacity *int             `json:"maxCapacity,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// UpdateTimeSlotRequest запрос на обновление слота.
// Поля-указатели: nil означает "не менять".
type UpdateTimeSlotRequest struct {
	Requester   domain.Requester `json:"-"`
	Time        *string          `json:"time,omitempty"`
	MaxCapacity *int             `json:"maxCapacity,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// TimeSlotResponse слот времени в ответе API
type TimeSlotResponse struct {
	ID                int64  `json:"id"`
	Time              string `json:"time"`
	MaxCapacity       *int   `json:"maxCapacity,omitempty"`
	EffectiveCapacity int    `json:"effectiveCapacity"`
	IsActive          bool   `json:"isActive"`
}

// TimeSlotListResponse список слотов
type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

// FromDomainTimeSlot конвертирует доменную модель в DTO
func FromDomainTimeSlot(s *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:                s.ID,
		Time:              s.Time.String(),
		MaxCapacity:       s.MaxCapacity,
		EffectiveCapacity: s.EffectiveCapacity(),
		IsActive:          s.IsActive,
	}
}

// FromDomainTimeSlotList конвертирует список доменных моделей в DTO
func FromDomainTimeSlotList(slots []*domain.TimeSlot) *TimeSlotListResponse {
	resp := &TimeSlotListResponse{
		TimeSlots: make([]TimeSlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.TimeSlots = append(resp.TimeSlots, *FromDomainTimeSlot(s))
	}
	return resp
}
