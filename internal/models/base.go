package models

import "time"

// Base: id и метки времени. Записи не удаляются мягко, поля deleted_at нет.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
