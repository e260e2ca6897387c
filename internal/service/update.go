package service

import (
	"context"
	"log/slog"

	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
	"changelog/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// updateService implements the UpdateService interface
type updateService struct {
	updates    repositories.UpdateRepository
	authorizer services.ChainAuthorizer
	logger     *slog.Logger
}

// NewUpdateService creates a new update service
func NewUpdateService(
	updates repositories.UpdateRepository,
	authorizer services.ChainAuthorizer,
	logger *slog.Logger,
) services.UpdateService {
	return &updateService{
		updates:    updates,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Create creates an update under a caller-owned product
func (s *updateService) Create(ctx context.Context, identity models.Identity, req *services.CreateUpdateRequest) (*models.Update, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	// The parent product must exist and be owned by the caller
	if _, err := s.authorizer.AuthorizeProduct(ctx, identity.ID, req.ProductID); err != nil {
		return nil, err
	}

	update := &models.Update{
		Title:     req.Title,
		Body:      req.Body,
		Status:    req.Status,
		Version:   req.Version,
		Asset:     req.Asset,
		ProductID: req.ProductID,
	}

	if err := s.updates.Create(ctx, update); err != nil {
		return nil, err
	}

	s.logger.Info("update created",
		"id", update.ID,
		"product_id", update.ProductID,
		"user_id", identity.ID,
	)

	return update, nil
}

// List retrieves all updates in the caller's ownership chain
func (s *updateService) List(ctx context.Context, identity models.Identity) ([]models.Update, error) {
	return s.updates.List(ctx, identity.ID)
}

// Get retrieves an update after authorizing the ownership chain
func (s *updateService) Get(ctx context.Context, id string, identity models.Identity) (*models.Update, error) {
	return s.authorizer.AuthorizeUpdate(ctx, identity.ID, id)
}

// Update applies mutable fields after authorizing the ownership chain.
// The write itself re-checks the chain in a single conditional statement, so
// a concurrent delete surfaces as not-found rather than a partial write.
func (s *updateService) Update(ctx context.Context, id string, identity models.Identity, req *services.UpdateUpdateRequest) (*models.Update, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, err
	}

	update, err := s.authorizer.AuthorizeUpdate(ctx, identity.ID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		update.Title = *req.Title
	}
	if req.Body != nil {
		update.Body = *req.Body
	}
	if req.Status != nil {
		update.Status = *req.Status
	}
	if req.Version != nil {
		update.Version = *req.Version
	}
	if req.Asset != nil {
		update.Asset = req.Asset
	}

	if err := s.updates.Update(ctx, update, identity.ID); err != nil {
		return nil, err
	}

	s.logger.Info("update updated", "id", update.ID, "user_id", identity.ID)

	return update, nil
}

// Delete removes an update after authorizing the ownership chain
func (s *updateService) Delete(ctx context.Context, id string, identity models.Identity) error {
	if _, err := s.authorizer.AuthorizeUpdate(ctx, identity.ID, id); err != nil {
		return err
	}

	if err := s.updates.Delete(ctx, id, identity.ID); err != nil {
		return err
	}

	s.logger.Info("update deleted", "id", id, "user_id", identity.ID)

	return nil
}

// validateCreateRequest validates a create update request
func (s *updateService) validateCreateRequest(req *services.CreateUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required.Error("Title is required")),
		validation.Field(&req.Body, validation.Required.Error("Body is required")),
		validation.Field(&req.Status,
			validation.Required.Error("Status is required"),
			validation.In(models.UpdateStatuses...).Error("Invalid status value"),
		),
		validation.Field(&req.Version, validation.Required.Error("Version is required")),
		validation.Field(&req.ProductID, validation.Required.Error("Product ID is required")),
	)
}

// validateUpdateRequest validates an update update request.
// No transition guard: any enum value is accepted regardless of the current
// status.
func (s *updateService) validateUpdateRequest(req *services.UpdateUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.NilOrNotEmpty),
		validation.Field(&req.Body, validation.NilOrNotEmpty),
		validation.Field(&req.Status,
			validation.NilOrNotEmpty.Error("Invalid status value"),
			validation.In(models.UpdateStatuses...).Error("Invalid status value"),
		),
		validation.Field(&req.Version, validation.NilOrNotEmpty),
	)
}
