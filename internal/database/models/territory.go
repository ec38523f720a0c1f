package models

import "time"

// Territory represents a geographic unit assignable for field service.
// Name uniqueness is case-insensitive, enforced by a unique index on
// LOWER(nome) created during database initialization.
type Territory struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome             string    `json:"nome" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	EnderecoNaoBater string    `json:"endereco_nao_bater" gorm:"size:200" validate:"max=200"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the table name for Territory
func (Territory) TableName() string {
	return "territorios"
}
