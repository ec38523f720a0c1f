package repository

import (
	"github.com/rafasilverio93/designar/internal/database/models"

	"gorm.io/gorm"
)

// TerritoryRepository handles database operations for territories
type TerritoryRepository struct {
	db *gorm.DB
}

// NewTerritoryRepository creates a new territory repository
func NewTerritoryRepository(db *gorm.DB) *TerritoryRepository {
	return &TerritoryRepository{db: db}
}

// Create creates a new territory
func (r *TerritoryRepository) Create(territory *models.Territory) error {
	return r.db.Create(territory).Error
}

// GetByID retrieves a territory by ID
func (r *TerritoryRepository) GetByID(id uint) (*models.Territory, error) {
	var territory models.Territory
	err := r.db.First(&territory, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &territory, nil
}

// GetByNome retrieves a territory by name, case-insensitively
func (r *TerritoryRepository) GetByNome(nome string) (*models.Territory, error) {
	var territory models.Territory
	err := r.db.First(&territory, "LOWER(nome) = LOWER(?)", nome).Error
	if err != nil {
		return nil, err
	}
	return &territory, nil
}

// GetAll retrieves all territories
func (r *TerritoryRepository) GetAll() ([]models.Territory, error) {
	var territories []models.Territory
	err := r.db.Order("id").Find(&territories).Error
	return territories, err
}

// NomeExists checks whether another territory already uses the name, case-insensitively
func (r *TerritoryRepository) NomeExists(nome string, excludeID *uint) (bool, error) {
	query := r.db.Model(&models.Territory{}).Where("LOWER(nome) = LOWER(?)", nome)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update replaces both columns of a territory and reports rows affected.
// A missing id yields zero rows affected, not an error.
func (r *TerritoryRepository) Update(id uint, nome, enderecoNaoBater string) (int64, error) {
	result := r.db.Model(&models.Territory{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":               nome,
		"endereco_nao_bater": enderecoNaoBater,
	})
	return result.RowsAffected, result.Error
}

// Delete deletes a territory and reports rows affected
func (r *TerritoryRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Territory{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
