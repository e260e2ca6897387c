package service

import (
	"context"
	"errors"
	"testing"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func validCreateUpdateRequest() *services.CreateUpdateRequest {
	return &services.CreateUpdateRequest{
		Title:     "Punched card reader",
		Body:      "Cards are now validated before execution.",
		Status:    models.StatusShipped,
		Version:   "1.0.0",
		ProductID: "product-1",
	}
}

func TestCreateUpdate(t *testing.T) {
	repo := newFakeUpdateRepo()
	authorizer := &fakeAuthorizer{
		product: &models.Product{ID: "product-1", UserID: owner.ID},
	}
	svc := NewUpdateService(repo, authorizer, testLogger())

	update, err := svc.Create(context.Background(), owner, validCreateUpdateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if update.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if update.ProductID != "product-1" {
		t.Errorf("ProductID = %q, want %q", update.ProductID, "product-1")
	}
	if update.Status != models.StatusShipped {
		t.Errorf("Status = %q, want %q", update.Status, models.StatusShipped)
	}
}

func TestCreateUpdateUnownedProduct(t *testing.T) {
	repo := newFakeUpdateRepo()
	authorizer := &fakeAuthorizer{
		productErr: domain.PolicyHideExistence.Deny("Product not found", "Not authorized to access this product"),
	}
	svc := NewUpdateService(repo, authorizer, testLogger())

	_, err := svc.Create(context.Background(), owner, validCreateUpdateRequest())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
	if len(repo.created) != 0 {
		t.Error("unauthorized create reached the store")
	}
}

func TestCreateUpdateValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*services.CreateUpdateRequest)
		wantField string
	}{
		{name: "missing title", mutate: func(r *services.CreateUpdateRequest) { r.Title = "" }, wantField: "title"},
		{name: "missing body", mutate: func(r *services.CreateUpdateRequest) { r.Body = "" }, wantField: "body"},
		{name: "missing status", mutate: func(r *services.CreateUpdateRequest) { r.Status = "" }, wantField: "status"},
		{name: "invalid status", mutate: func(r *services.CreateUpdateRequest) { r.Status = "DONE" }, wantField: "status"},
		{name: "missing version", mutate: func(r *services.CreateUpdateRequest) { r.Version = "" }, wantField: "version"},
		{name: "missing product id", mutate: func(r *services.CreateUpdateRequest) { r.ProductID = "" }, wantField: "productId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUpdateRepo()
			authorizer := &fakeAuthorizer{
				product: &models.Product{ID: "product-1", UserID: owner.ID},
			}
			svc := NewUpdateService(repo, authorizer, testLogger())

			req := validCreateUpdateRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), owner, req)

			var fieldErrs validation.Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("Create() error = %v, want validation.Errors", err)
			}
			if _, ok := fieldErrs[tt.wantField]; !ok {
				t.Errorf("no error for field %q in %v", tt.wantField, fieldErrs)
			}
			if len(repo.created) != 0 {
				t.Error("invalid create reached the store")
			}
		})
	}
}

func TestGetUpdateAuthorized(t *testing.T) {
	repo := newFakeUpdateRepo()
	authorizer := &fakeAuthorizer{
		update: &models.Update{ID: "update-1", Title: "Reader", ProductID: "product-1"},
	}
	svc := NewUpdateService(repo, authorizer, testLogger())

	update, err := svc.Get(context.Background(), "update-1", owner)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if update.ID != "update-1" {
		t.Errorf("ID = %q, want %q", update.ID, "update-1")
	}
}

func TestUpdateUpdatePartial(t *testing.T) {
	repo := newFakeUpdateRepo()
	existing := &models.Update{
		ID:        "update-1",
		Title:     "Reader",
		Body:      "First pass.",
		Status:    models.StatusInProgress,
		Version:   "0.1.0",
		ProductID: "product-1",
	}
	repo.put(existing, owner.ID)
	authorizer := &fakeAuthorizer{update: existing}
	svc := NewUpdateService(repo, authorizer, testLogger())

	status := models.StatusShipped
	update, err := svc.Update(context.Background(), "update-1", owner, &services.UpdateUpdateRequest{
		Status:  &status,
		Version: strPtr("1.0.0"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if update.Title != "Reader" || update.Body != "First pass." {
		t.Error("untouched fields changed")
	}
	if update.Status != models.StatusShipped || update.Version != "1.0.0" {
		t.Errorf("got status %q version %q, want SHIPPED 1.0.0", update.Status, update.Version)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("store updates = %d, want 1", len(repo.updated))
	}
}

func TestUpdateUpdateValidation(t *testing.T) {
	statusPtr := func(s models.UpdateStatus) *models.UpdateStatus { return &s }

	tests := []struct {
		name      string
		req       *services.UpdateUpdateRequest
		wantField string
	}{
		{name: "empty status", req: &services.UpdateUpdateRequest{Status: statusPtr("")}, wantField: "status"},
		{name: "invalid status", req: &services.UpdateUpdateRequest{Status: statusPtr("DONE")}, wantField: "status"},
		{name: "empty title", req: &services.UpdateUpdateRequest{Title: strPtr("")}, wantField: "title"},
		{name: "empty version", req: &services.UpdateUpdateRequest{Version: strPtr("")}, wantField: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUpdateRepo()
			existing := &models.Update{ID: "update-1", Status: models.StatusInProgress, ProductID: "product-1"}
			repo.put(existing, owner.ID)
			authorizer := &fakeAuthorizer{update: existing}
			svc := NewUpdateService(repo, authorizer, testLogger())

			_, err := svc.Update(context.Background(), "update-1", owner, tt.req)

			var fieldErrs validation.Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("Update() error = %v, want validation.Errors", err)
			}
			fieldErr, ok := fieldErrs[tt.wantField]
			if !ok {
				t.Fatalf("no error for field %q in %v", tt.wantField, fieldErrs)
			}
			if tt.wantField == "status" && fieldErr.Error() != "Invalid status value" {
				t.Errorf("status error = %q, want %q", fieldErr.Error(), "Invalid status value")
			}
			if len(repo.updated) != 0 {
				t.Error("invalid update reached the store")
			}
		})
	}
}

func TestUpdateUpdateUnownedChain(t *testing.T) {
	repo := newFakeUpdateRepo()
	authorizer := &fakeAuthorizer{
		updateErr: domain.PolicyHideExistence.Deny("Update not found", "Not authorized to access this update"),
	}
	svc := NewUpdateService(repo, authorizer, testLogger())

	_, err := svc.Update(context.Background(), "update-1", owner, &services.UpdateUpdateRequest{
		Title: strPtr("New title"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if len(repo.updated) != 0 {
		t.Error("unauthorized update reached the store")
	}
}

func TestDeleteUpdate(t *testing.T) {
	repo := newFakeUpdateRepo()
	existing := &models.Update{ID: "update-1", Title: "Reader", ProductID: "product-1"}
	repo.put(existing, owner.ID)
	authorizer := &fakeAuthorizer{update: existing}
	svc := NewUpdateService(repo, authorizer, testLogger())

	if err := svc.Delete(context.Background(), "update-1", owner); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "update-1" {
		t.Errorf("deleted = %v, want [update-1]", repo.deleted)
	}
}

func TestDeleteUpdateUnownedChain(t *testing.T) {
	repo := newFakeUpdateRepo()
	repo.put(&models.Update{ID: "update-1", ProductID: "product-1"}, "user-2")
	authorizer := &fakeAuthorizer{
		updateErr: domain.PolicyHideExistence.Deny("Update not found", "Not authorized to access this update"),
	}
	svc := NewUpdateService(repo, authorizer, testLogger())

	if err := svc.Delete(context.Background(), "update-1", owner); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("unauthorized delete reached the store")
	}
}
