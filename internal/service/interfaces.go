package service

import (
	"github.com/rafasilverio93/designar/internal/database/models"
	"github.com/rafasilverio93/designar/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TerritoryServiceInterface defines the interface for territory service
type TerritoryServiceInterface interface {
	Create(req *CreateTerritoryRequest) (*models.Territory, error)
	List() ([]models.Territory, error)
	Update(id uint, req *UpdateTerritoryRequest) (int64, error)
	Delete(id uint) (int64, error)
}

// OutingServiceInterface defines the interface for outing service
type OutingServiceInterface interface {
	Create(req *CreateOutingRequest) (*models.Outing, error)
	List() ([]models.Outing, error)
	Update(id uint, req *UpdateOutingRequest) (int64, error)
	Delete(id uint) (int64, error)
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	Create(req *CreateAssignmentRequest) (*models.Assignment, error)
	List(filter repository.AssignmentFilter) ([]models.AssignmentView, error)
	Update(id uint, req *UpdateAssignmentRequest) (int64, error)
	Delete(id uint) (int64, error)
}
