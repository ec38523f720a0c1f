package models

import "time"

// Assignment binds one territory to one outing for a date range.
// Dates travel and persist as ISO yyyy-mm-dd strings; lexical order on that
// format equals chronological order, so range filters compare them directly.
type Assignment struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	TerritorioID   uint      `json:"territorio_id" gorm:"not null;index" validate:"required"`
	SaidaID        uint      `json:"saida_id" gorm:"not null;index" validate:"required"`
	DataDesignacao string    `json:"data_designacao" gorm:"size:10;not null" validate:"required,datetime=2006-01-02"`
	DataDevolucao  string    `json:"data_devolucao" gorm:"size:10;not null" validate:"required,datetime=2006-01-02"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Territorio Territory `json:"territorio,omitempty" gorm:"foreignKey:TerritorioID;constraint:OnDelete:CASCADE"`
	Saida      Outing    `json:"saida,omitempty" gorm:"foreignKey:SaidaID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "designacoes"
}

// AssignmentView is an assignment row enriched with the referenced territory
// and outing names, resolved at query time via inner join.
type AssignmentView struct {
	ID               uint   `json:"id"`
	TerritorioID     uint   `json:"territorio_id"`
	SaidaID          uint   `json:"saida_id"`
	DataDesignacao   string `json:"data_designacao"`
	DataDevolucao    string `json:"data_devolucao"`
	TerritorioNome   string `json:"territorio_nome"`
	SaidaNome        string `json:"saida_nome"`
	EnderecoNaoBater string `json:"endereco_nao_bater"`
}
