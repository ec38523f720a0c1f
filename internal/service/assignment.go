package service

import (
	"errors"
	"fmt"

	"github.com/rafasilverio93/designar/internal/database/models"
	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AssignmentService handles business logic for assignments
type AssignmentService struct {
	repo          repository.AssignmentRepositoryInterface
	territoryRepo repository.TerritoryRepositoryInterface
	outingRepo    repository.OutingRepositoryInterface
	validator     *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	territoryRepo repository.TerritoryRepositoryInterface,
	outingRepo repository.OutingRepositoryInterface,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		repo:          repo,
		territoryRepo: territoryRepo,
		outingRepo:    outingRepo,
		validator:     validator,
	}
}

// CreateAssignmentRequest represents the request to create an assignment.
// The camelCase field names are the wire contract of the client views.
type CreateAssignmentRequest struct {
	TerritorioID   uint   `json:"territorioId" validate:"required"`
	SaidaCampoID   uint   `json:"saidaCampoId" validate:"required"`
	DataDesignacao string `json:"dataDesignacao" validate:"required,datetime=2006-01-02"`
	DataDevolucao  string `json:"dataDevolucao" validate:"required,datetime=2006-01-02"`
}

// UpdateAssignmentRequest represents the request to update an assignment.
// Updates are full replaces of all four columns.
type UpdateAssignmentRequest struct {
	TerritorioID   uint   `json:"territorioId" validate:"required"`
	SaidaCampoID   uint   `json:"saidaCampoId" validate:"required"`
	DataDesignacao string `json:"dataDesignacao" validate:"required,datetime=2006-01-02"`
	DataDevolucao  string `json:"dataDevolucao" validate:"required,datetime=2006-01-02"`
}

// checkReferences verifies both foreign rows exist before writing
func (s *AssignmentService) checkReferences(territorioID, saidaID uint) error {
	if _, err := s.territoryRepo.GetByID(territorioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTerritoryNotFound
		}
		return fmt.Errorf("failed to verify territory: %w", err)
	}
	if _, err := s.outingRepo.GetByID(saidaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOutingNotFound
		}
		return fmt.Errorf("failed to verify outing: %w", err)
	}
	return nil
}

// checkDateRange enforces data_devolucao >= data_designacao. ISO strings
// compare lexically in chronological order.
func checkDateRange(dataDesignacao, dataDevolucao string) error {
	if dataDevolucao < dataDesignacao {
		return apperrors.NewValidationError("dataDevolucao", apperrors.ErrInvalidDateRange.Error())
	}
	return nil
}

// Create creates a new assignment
func (s *AssignmentService) Create(req *CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := checkDateRange(req.DataDesignacao, req.DataDevolucao); err != nil {
		return nil, err
	}
	if err := s.checkReferences(req.TerritorioID, req.SaidaCampoID); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		TerritorioID:   req.TerritorioID,
		SaidaID:        req.SaidaCampoID,
		DataDesignacao: req.DataDesignacao,
		DataDevolucao:  req.DataDevolucao,
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return assignment, nil
}

// List retrieves assignments joined with territory and outing names,
// narrowed by the optional filter dimensions
func (s *AssignmentService) List(filter repository.AssignmentFilter) ([]models.AssignmentView, error) {
	views, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return views, nil
}

// Update replaces all four assignment fields and returns the number of rows
// affected. A missing id reports zero rows affected, not an error.
func (s *AssignmentService) Update(id uint, req *UpdateAssignmentRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}
	if err := checkDateRange(req.DataDesignacao, req.DataDevolucao); err != nil {
		return 0, err
	}
	if err := s.checkReferences(req.TerritorioID, req.SaidaCampoID); err != nil {
		return 0, err
	}

	updated, err := s.repo.Update(id, req.TerritorioID, req.SaidaCampoID, req.DataDesignacao, req.DataDevolucao)
	if err != nil {
		return 0, fmt.Errorf("failed to update assignment: %w", err)
	}

	return updated, nil
}

// Delete removes an assignment and returns the number of rows affected
func (s *AssignmentService) Delete(id uint) (int64, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete assignment: %w", err)
	}
	return deleted, nil
}
