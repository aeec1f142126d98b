package domain

import "time"

// TableLocation расположение столика в зале
type TableLocation string

const (
	LocationWindow  TableLocation = "Window"
	LocationCorner  TableLocation = "Corner"
	LocationCentre  TableLocation = "Centre"
	LocationPrivate TableLocation = "Private"
)

// Locations список всех допустимых расположений
var Locations = []TableLocation{
	LocationWindow,
	LocationCorner,
	LocationCentre,
	LocationPrivate,
}

// IsValid returns true if the location is one of the known values
func (l TableLocation) IsValid() bool {
	for _, loc := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// Table represents a physical table in the restaurant.
// Столики не удаляются физически, пока на них ссылаются бронирования:
// вместо этого снимается флаг IsAvailable.
type Table struct {
	ID          int64
	TableNumber int // Номер столика, уникален в пределах ресторана
	Capacity    int // Максимум гостей за столиком, >= 1
	Location    TableLocation
	IsAvailable bool
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
