package models

import "time"

// TableStatus marks whether a table currently has guests
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

type Table struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Number    int         `json:"number" gorm:"not null;uniqueIndex"`
	Room      string      `json:"room"`
	Status    TableStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
