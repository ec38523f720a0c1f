package repository

import (
	"github.com/rafasilverio93/designar/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TerritoryRepositoryInterface defines the interface for territory repository operations
type TerritoryRepositoryInterface interface {
	Create(territory *models.Territory) error
	GetByID(id uint) (*models.Territory, error)
	GetByNome(nome string) (*models.Territory, error)
	GetAll() ([]models.Territory, error)
	NomeExists(nome string, excludeID *uint) (bool, error)
	Update(id uint, nome, enderecoNaoBater string) (int64, error)
	Delete(id uint) (int64, error)
}

// OutingRepositoryInterface defines the interface for outing repository operations
type OutingRepositoryInterface interface {
	Create(outing *models.Outing) error
	GetByID(id uint) (*models.Outing, error)
	GetAll() ([]models.Outing, error)
	PairExists(nome string, diaSemana models.Weekday, excludeID *uint) (bool, error)
	Update(id uint, nome string, diaSemana models.Weekday) (int64, error)
	Delete(id uint) (int64, error)
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByID(id uint) (*models.Assignment, error)
	List(filter AssignmentFilter) ([]models.AssignmentView, error)
	Update(id uint, territorioID, saidaID uint, dataDesignacao, dataDevolucao string) (int64, error)
	Delete(id uint) (int64, error)
}
