package models

import (
	"github.com/rpires71/PK-BookingService/internal/domain"
)

// CreateTableRequest запрос на создание столика
type CreateTableRequest struct {
	Requester   domain.Requester `json:"-"`
	TableNumber int              `json:"tableNumber"`
	Capacity    int              `json:"capacity"`
	Location    string           `json:"location"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// UpdateTableRequest запрос на обновление столика.
// Поля-указатели: nil означает "не менять".
type UpdateTableRequest struct {
	Requester   domain.Requester `json:"-"`
	TableNumber *int             `json:"tableNumber,omitempty"`
	Capacity    *int             `json:"capacity,omitempty"`
	Location    *string          `json:"location,omitempty"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// TableResponse столик в ответе API
type TableResponse struct {
	ID          int64   `json:"id"`
	TableNumber int     `json:"tableNumber"`
	Capacity    int     `json:"capacity"`
	Location    string  `json:"location"`
	IsAvailable bool    `json:"isAvailable"`
	Description *string `json:"description,omitempty"`
}

// TableListResponse список столиков
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTable конвертирует доменную модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Location:    string(t.Location),
		IsAvailable: t.IsAvailable,
		Description: t.Description,
	}
}

// FromDomainTableList конвертирует список доменных моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	resp := &TableListResponse{
		Tables: make([]TableResponse, 0, len(tables)),
	}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, *FromDomainTable(t))
	}
	return resp
}
