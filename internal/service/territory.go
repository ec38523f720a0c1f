package service

import (
	"fmt"

	"github.com/rafasilverio93/designar/internal/database/models"
	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TerritoryService handles business logic for territories
type TerritoryService struct {
	repo      repository.TerritoryRepositoryInterface
	validator *validator.Validate
}

// NewTerritoryService creates a new territory service
func NewTerritoryService(repo repository.TerritoryRepositoryInterface, validator *validator.Validate) *TerritoryService {
	return &TerritoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTerritoryRequest represents the request to create a territory
type CreateTerritoryRequest struct {
	Nome             string `json:"nome" validate:"required,min=1,max=100"`
	EnderecoNaoBater string `json:"endereco_nao_bater" validate:"max=200"`
}

// UpdateTerritoryRequest represents the request to update a territory.
// Updates are full replaces of both columns.
type UpdateTerritoryRequest struct {
	Nome             string `json:"nome" validate:"required,min=1,max=100"`
	EnderecoNaoBater string `json:"endereco_nao_bater" validate:"max=200"`
}

// Create creates a new territory
func (s *TerritoryService) Create(req *CreateTerritoryRequest) (*models.Territory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Names are unique case-insensitively
	exists, err := s.repo.NomeExists(req.Nome, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing territory by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTerritoryExists
	}

	territory := &models.Territory{
		Nome:             req.Nome,
		EnderecoNaoBater: req.EnderecoNaoBater,
	}

	if err := s.repo.Create(territory); err != nil {
		return nil, fmt.Errorf("failed to create territory: %w", err)
	}

	return territory, nil
}

// List retrieves all territories
func (s *TerritoryService) List() ([]models.Territory, error) {
	territories, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list territories: %w", err)
	}
	return territories, nil
}

// Update replaces a territory's fields and returns the number of rows affected.
// Updating a missing id reports zero rows affected, not an error.
func (s *TerritoryService) Update(id uint, req *UpdateTerritoryRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.NomeExists(req.Nome, &id)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing territory by name: %w", err)
	}
	if exists {
		return 0, apperrors.ErrTerritoryExists
	}

	updated, err := s.repo.Update(id, req.Nome, req.EnderecoNaoBater)
	if err != nil {
		return 0, fmt.Errorf("failed to update territory: %w", err)
	}

	return updated, nil
}

// Delete removes a territory and returns the number of rows affected.
// Referencing assignments are removed by the cascade constraint.
func (s *TerritoryService) Delete(id uint) (int64, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete territory: %w", err)
	}
	return deleted, nil
}
