package repository

import (
	"github.com/rafasilverio93/designar/internal/database/models"

	"gorm.io/gorm"
)

// AssignmentFilter narrows the assignment listing. Each field is optional and
// all present fields are ANDed together; an absent field means no constraint
// on that dimension.
type AssignmentFilter struct {
	TerritorioIDs []uint
	SaidaIDs      []uint
	DataInicial   string // data_designacao >= DataInicial, inclusive
	DataFinal     string // data_devolucao <= DataFinal, inclusive
}

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// List returns assignment rows enriched with the referenced territory and
// outing names. Inner joins resolve the names at query time, so a row whose
// territory or outing no longer exists is excluded rather than erroring.
func (r *AssignmentRepository) List(filter AssignmentFilter) ([]models.AssignmentView, error) {
	query := r.db.Model(&models.Assignment{}).
		Select(`designacoes.id,
			designacoes.territorio_id,
			designacoes.saida_id,
			designacoes.data_designacao,
			designacoes.data_devolucao,
			territorios.nome AS territorio_nome,
			saidas_campo.nome AS saida_nome,
			territorios.endereco_nao_bater`).
		Joins("JOIN territorios ON designacoes.territorio_id = territorios.id").
		Joins("JOIN saidas_campo ON designacoes.saida_id = saidas_campo.id")

	if len(filter.TerritorioIDs) > 0 {
		query = query.Where("designacoes.territorio_id IN ?", filter.TerritorioIDs)
	}
	if len(filter.SaidaIDs) > 0 {
		query = query.Where("designacoes.saida_id IN ?", filter.SaidaIDs)
	}
	if filter.DataInicial != "" {
		query = query.Where("designacoes.data_designacao >= ?", filter.DataInicial)
	}
	if filter.DataFinal != "" {
		query = query.Where("designacoes.data_devolucao <= ?", filter.DataFinal)
	}

	var views []models.AssignmentView
	err := query.Order("designacoes.id").Scan(&views).Error
	return views, err
}

// Update replaces all four columns of an assignment and reports rows affected
func (r *AssignmentRepository) Update(id uint, territorioID, saidaID uint, dataDesignacao, dataDevolucao string) (int64, error) {
	result := r.db.Model(&models.Assignment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"territorio_id":   territorioID,
		"saida_id":        saidaID,
		"data_designacao": dataDesignacao,
		"data_devolucao":  dataDevolucao,
	})
	return result.RowsAffected, result.Error
}

// Delete deletes an assignment and reports rows affected
func (r *AssignmentRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Assignment{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
