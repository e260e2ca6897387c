package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
)

// Minimal read-only fakes; the authorizer only touches the lookup methods.

type stubProducts struct {
	product *models.Product
}

func (s *stubProducts) Create(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProducts) GetByID(ctx context.Context, id, userID string) (*models.Product, error) {
	return nil, domain.ErrNotFound
}
func (s *stubProducts) GetByIDOnly(ctx context.Context, id string) (*models.Product, error) {
	if s.product == nil || s.product.ID != id {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return s.product, nil
}
func (s *stubProducts) List(ctx context.Context, userID string) ([]models.Product, error) {
	return nil, nil
}
func (s *stubProducts) Update(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProducts) Delete(ctx context.Context, id, userID string) error       { return nil }

type stubUpdates struct {
	update  *models.Update
	ownerID string
}

func (s *stubUpdates) Create(ctx context.Context, update *models.Update) error { return nil }
func (s *stubUpdates) GetByID(ctx context.Context, id string) (*models.Update, string, error) {
	if s.update == nil || s.update.ID != id {
		return nil, "", fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	return s.update, s.ownerID, nil
}
func (s *stubUpdates) List(ctx context.Context, userID string) ([]models.Update, error) {
	return nil, nil
}
func (s *stubUpdates) Update(ctx context.Context, update *models.Update, userID string) error {
	return nil
}
func (s *stubUpdates) Delete(ctx context.Context, id, userID string) error { return nil }

type stubPoints struct {
	point   *models.UpdatePoint
	ownerID string
}

func (s *stubPoints) Create(ctx context.Context, point *models.UpdatePoint) error { return nil }
func (s *stubPoints) GetByID(ctx context.Context, id string) (*models.UpdatePoint, string, error) {
	if s.point == nil || s.point.ID != id {
		return nil, "", fmt.Errorf("update point %s: %w", id, domain.ErrNotFound)
	}
	return s.point, s.ownerID, nil
}
func (s *stubPoints) List(ctx context.Context, userID string) ([]models.UpdatePoint, error) {
	return nil, nil
}
func (s *stubPoints) Update(ctx context.Context, point *models.UpdatePoint, userID string) error {
	return nil
}
func (s *stubPoints) Delete(ctx context.Context, id, userID string) error { return nil }

func TestAuthorizeProduct(t *testing.T) {
	product := &models.Product{ID: "product-1", UserID: "user-1"}

	tests := []struct {
		name    string
		policy  domain.AuthorizationPolicy
		userID  string
		id      string
		wantErr error
		wantMsg string
	}{
		{name: "owner", policy: domain.PolicyHideExistence, userID: "user-1", id: "product-1"},
		{
			name:    "non-owner hidden",
			policy:  domain.PolicyHideExistence,
			userID:  "user-2",
			id:      "product-1",
			wantErr: domain.ErrNotFound,
			wantMsg: "Product not found",
		},
		{
			name:    "non-owner revealed",
			policy:  domain.PolicyRevealForbidden,
			userID:  "user-2",
			id:      "product-1",
			wantErr: domain.ErrForbidden,
			wantMsg: "Not authorized to access this product",
		},
		{
			name:    "missing product",
			policy:  domain.PolicyRevealForbidden,
			userID:  "user-1",
			id:      "product-9",
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := NewOwnerAuthorizer(
				&stubProducts{product: product},
				&stubUpdates{},
				&stubPoints{},
				tt.policy,
			)

			got, err := authorizer.AuthorizeProduct(context.Background(), tt.userID, tt.id)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AuthorizeProduct() error = %v", err)
				}
				if got.ID != tt.id {
					t.Errorf("product ID = %q, want %q", got.ID, tt.id)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AuthorizeProduct() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("error message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestAuthorizeUpdate(t *testing.T) {
	update := &models.Update{ID: "update-1", ProductID: "product-1"}

	tests := []struct {
		name    string
		policy  domain.AuthorizationPolicy
		userID  string
		wantErr error
	}{
		{name: "chain owner", policy: domain.PolicyHideExistence, userID: "user-1"},
		{name: "non-owner hidden", policy: domain.PolicyHideExistence, userID: "user-2", wantErr: domain.ErrNotFound},
		{name: "non-owner revealed", policy: domain.PolicyRevealForbidden, userID: "user-2", wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := NewOwnerAuthorizer(
				&stubProducts{},
				&stubUpdates{update: update, ownerID: "user-1"},
				&stubPoints{},
				tt.policy,
			)

			got, err := authorizer.AuthorizeUpdate(context.Background(), tt.userID, "update-1")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AuthorizeUpdate() error = %v", err)
				}
				if got.ID != "update-1" {
					t.Errorf("update ID = %q, want update-1", got.ID)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AuthorizeUpdate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeUpdatePoint(t *testing.T) {
	point := &models.UpdatePoint{ID: "point-1", UpdateID: "update-1"}

	authorizer := NewOwnerAuthorizer(
		&stubProducts{},
		&stubUpdates{},
		&stubPoints{point: point, ownerID: "user-1"},
		domain.PolicyHideExistence,
	)

	if _, err := authorizer.AuthorizeUpdatePoint(context.Background(), "user-1", "point-1"); err != nil {
		t.Fatalf("AuthorizeUpdatePoint() owner error = %v", err)
	}

	_, err := authorizer.AuthorizeUpdatePoint(context.Background(), "user-2", "point-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AuthorizeUpdatePoint() non-owner error = %v, want ErrNotFound", err)
	}
	if err.Error() != "Update point not found" {
		t.Errorf("error message = %q, want %q", err.Error(), "Update point not found")
	}
}
