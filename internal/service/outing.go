package service

import (
	"fmt"

	"github.com/rafasilverio93/designar/internal/database/models"
	apperrors "github.com/rafasilverio93/designar/internal/errors"
	"github.com/rafasilverio93/designar/internal/logger"
	"github.com/rafasilverio93/designar/internal/repository"

	"github.com/go-playground/validator/v10"
)

// OutingService handles business logic for field-service outings
type OutingService struct {
	repo      repository.OutingRepositoryInterface
	notifier  Notifier
	validator *validator.Validate
	log       *logger.Logger
}

// NewOutingService creates a new outing service
func NewOutingService(repo repository.OutingRepositoryInterface, notifier Notifier, validator *validator.Validate) *OutingService {
	return &OutingService{
		repo:      repo,
		notifier:  notifier,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateOutingRequest represents the request to create an outing
type CreateOutingRequest struct {
	Nome      string         `json:"nome" validate:"required,min=1,max=100"`
	DiaSemana models.Weekday `json:"dia_semana" validate:"required"`
}

// UpdateOutingRequest represents the request to update an outing.
// Updates are full replaces of both columns.
type UpdateOutingRequest struct {
	Nome      string         `json:"nome" validate:"required,min=1,max=100"`
	DiaSemana models.Weekday `json:"dia_semana" validate:"required"`
}

// Create creates a new outing
func (s *OutingService) Create(req *CreateOutingRequest) (*models.Outing, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.DiaSemana.IsValid() {
		return nil, apperrors.NewValidationError("dia_semana", fmt.Sprintf("%q is not a weekday name", req.DiaSemana))
	}

	// Uniqueness is on the (name, weekday) pair
	exists, err := s.repo.PairExists(req.Nome, req.DiaSemana, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing outing: %w", err)
	}
	if exists {
		return nil, apperrors.ErrOutingExists
	}

	outing := &models.Outing{
		Nome:      req.Nome,
		DiaSemana: req.DiaSemana,
	}

	if err := s.repo.Create(outing); err != nil {
		return nil, fmt.Errorf("failed to create outing: %w", err)
	}

	return outing, nil
}

// List retrieves all outings
func (s *OutingService) List() ([]models.Outing, error) {
	outings, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list outings: %w", err)
	}
	return outings, nil
}

// Update replaces an outing's fields and returns the number of rows affected.
// A successful update fires the notification side-channel; send failures are
// logged and never fail the operation.
func (s *OutingService) Update(id uint, req *UpdateOutingRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	if !req.DiaSemana.IsValid() {
		return 0, apperrors.NewValidationError("dia_semana", fmt.Sprintf("%q is not a weekday name", req.DiaSemana))
	}

	exists, err := s.repo.PairExists(req.Nome, req.DiaSemana, &id)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing outing: %w", err)
	}
	if exists {
		return 0, apperrors.ErrOutingExists
	}

	updated, err := s.repo.Update(id, req.Nome, req.DiaSemana)
	if err != nil {
		return 0, fmt.Errorf("failed to update outing: %w", err)
	}

	if updated > 0 {
		if err := s.notifier.OutingUpdated(req.Nome, req.DiaSemana); err != nil {
			s.log.WithError(err).WithField("outing", req.Nome).Warn("outing update notification failed")
		}
	}

	return updated, nil
}

// Delete removes an outing and returns the number of rows affected.
// Referencing assignments are removed by the cascade constraint.
func (s *OutingService) Delete(id uint) (int64, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete outing: %w", err)
	}
	return deleted, nil
}
