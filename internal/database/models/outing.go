package models

import "time"

// Outing represents a scheduled field-service event on a fixed weekday.
// Two outings may share a name on different weekdays but not the same pair.
type Outing struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome      string    `json:"nome" gorm:"size:100;not null;uniqueIndex:idx_saidas_campo_nome_dia" validate:"required,min=1,max=100"`
	DiaSemana Weekday   `json:"dia_semana" gorm:"type:varchar(20);not null;uniqueIndex:idx_saidas_campo_nome_dia" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Outing
func (Outing) TableName() string {
	return "saidas_campo"
}
