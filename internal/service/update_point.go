package service

import (
	"context"
	"log/slog"

	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
	"changelog/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxUpdatePointDescription = 1000

// updatePointService implements the UpdatePointService interface
type updatePointService struct {
	points     repositories.UpdatePointRepository
	authorizer services.ChainAuthorizer
	logger     *slog.Logger
}

// NewUpdatePointService creates a new update point service
func NewUpdatePointService(
	points repositories.UpdatePointRepository,
	authorizer services.ChainAuthorizer,
	logger *slog.Logger,
) services.UpdatePointService {
	return &updatePointService{
		points:     points,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Create creates an update point under a caller-owned update
func (s *updatePointService) Create(ctx context.Context, identity models.Identity, req *services.CreateUpdatePointRequest) (*models.UpdatePoint, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	// The parent update's chain must be owned by the caller
	if _, err := s.authorizer.AuthorizeUpdate(ctx, identity.ID, req.UpdateID); err != nil {
		return nil, err
	}

	point := &models.UpdatePoint{
		Name:        req.Name,
		Description: req.Description,
		UpdateID:    req.UpdateID,
	}

	if err := s.points.Create(ctx, point); err != nil {
		return nil, err
	}

	s.logger.Info("update point created",
		"id", point.ID,
		"update_id", point.UpdateID,
		"user_id", identity.ID,
	)

	return point, nil
}

// List retrieves all update points in the caller's ownership chain
func (s *updatePointService) List(ctx context.Context, identity models.Identity) ([]models.UpdatePoint, error) {
	return s.points.List(ctx, identity.ID)
}

// Get retrieves an update point after authorizing the ownership chain
func (s *updatePointService) Get(ctx context.Context, id string, identity models.Identity) (*models.UpdatePoint, error) {
	return s.authorizer.AuthorizeUpdatePoint(ctx, identity.ID, id)
}

// Update applies mutable fields after authorizing the ownership chain
func (s *updatePointService) Update(ctx context.Context, id string, identity models.Identity, req *services.UpdateUpdatePointRequest) (*models.UpdatePoint, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, err
	}

	point, err := s.authorizer.AuthorizeUpdatePoint(ctx, identity.ID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		point.Name = *req.Name
	}
	if req.Description != nil {
		point.Description = *req.Description
	}

	if err := s.points.Update(ctx, point, identity.ID); err != nil {
		return nil, err
	}

	s.logger.Info("update point updated", "id", point.ID, "user_id", identity.ID)

	return point, nil
}

// Delete removes an update point after authorizing the ownership chain
func (s *updatePointService) Delete(ctx context.Context, id string, identity models.Identity) error {
	if _, err := s.authorizer.AuthorizeUpdatePoint(ctx, identity.ID, id); err != nil {
		return err
	}

	if err := s.points.Delete(ctx, id, identity.ID); err != nil {
		return err
	}

	s.logger.Info("update point deleted", "id", id, "user_id", identity.ID)

	return nil
}

// validateCreateRequest validates a create update point request
func (s *updatePointService) validateCreateRequest(req *services.CreateUpdatePointRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("Name is required"),
			validation.Length(2, 255).Error("Name must be between 2 and 255 characters"),
		),
		validation.Field(&req.Description,
			validation.Required.Error("Description is required"),
			validation.Length(2, maxUpdatePointDescription).Error("Description must be between 2 and 1000 characters"),
		),
		validation.Field(&req.UpdateID, validation.Required.Error("Update ID is required")),
	)
}

// validateUpdateRequest validates an update update point request
func (s *updatePointService) validateUpdateRequest(req *services.UpdateUpdatePointRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.NilOrNotEmpty,
			validation.Length(2, 255).Error("Name must be between 2 and 255 characters"),
		),
		validation.Field(&req.Description,
			validation.NilOrNotEmpty,
			validation.Length(2, maxUpdatePointDescription).Error("Description must be between 2 and 1000 characters"),
		),
	)
}
