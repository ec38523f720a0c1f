package repository

import (
	"github.com/rafasilverio93/designar/internal/database/models"

	"gorm.io/gorm"
)

// OutingRepository handles database operations for field-service outings
type OutingRepository struct {
	db *gorm.DB
}

// NewOutingRepository creates a new outing repository
func NewOutingRepository(db *gorm.DB) *OutingRepository {
	return &OutingRepository{db: db}
}

// Create creates a new outing
func (r *OutingRepository) Create(outing *models.Outing) error {
	return r.db.Create(outing).Error
}

// GetByID retrieves an outing by ID
func (r *OutingRepository) GetByID(id uint) (*models.Outing, error) {
	var outing models.Outing
	err := r.db.First(&outing, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &outing, nil
}

// GetAll retrieves all outings
func (r *OutingRepository) GetAll() ([]models.Outing, error) {
	var outings []models.Outing
	err := r.db.Order("id").Find(&outings).Error
	return outings, err
}

// PairExists checks whether another outing already uses the (name, weekday) pair
func (r *OutingRepository) PairExists(nome string, diaSemana models.Weekday, excludeID *uint) (bool, error) {
	query := r.db.Model(&models.Outing{}).Where("nome = ? AND dia_semana = ?", nome, diaSemana)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update replaces both columns of an outing and reports rows affected
func (r *OutingRepository) Update(id uint, nome string, diaSemana models.Weekday) (int64, error) {
	result := r.db.Model(&models.Outing{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":       nome,
		"dia_semana": diaSemana,
	})
	return result.RowsAffected, result.Error
}

// Delete deletes an outing and reports rows affected
func (r *OutingRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Outing{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
