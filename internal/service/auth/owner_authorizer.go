package auth

import (
	"context"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
	"changelog/internal/domain/services"
)

// OwnerAuthorizer implements ChainAuthorizer using ownership checks.
// A caller can access a resource iff they own the product at the root of its
// chain. How a mismatch is reported (404 vs 403) is decided by the policy,
// configured once for the whole service.
//
// This is the simplest authorization model. For future extensibility:
// - role-based: check the caller's role on the product
// - sharing: check whether the chain is shared with the caller
type OwnerAuthorizer struct {
	products repositories.ProductRepository
	updates  repositories.UpdateRepository
	points   repositories.UpdatePointRepository
	policy   domain.AuthorizationPolicy
}

// NewOwnerAuthorizer creates a new ownership-based authorizer
func NewOwnerAuthorizer(
	products repositories.ProductRepository,
	updates repositories.UpdateRepository,
	points repositories.UpdatePointRepository,
	policy domain.AuthorizationPolicy,
) services.ChainAuthorizer {
	return &OwnerAuthorizer{
		products: products,
		updates:  updates,
		points:   points,
		policy:   policy,
	}
}

// AuthorizeProduct returns the product iff the caller owns it
func (a *OwnerAuthorizer) AuthorizeProduct(ctx context.Context, userID, productID string) (*models.Product, error) {
	product, err := a.products.GetByIDOnly(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.UserID != userID {
		return nil, a.policy.Deny("Product not found", "Not authorized to access this product")
	}

	return product, nil
}

// AuthorizeUpdate returns the update iff its root product owner is the caller
func (a *OwnerAuthorizer) AuthorizeUpdate(ctx context.Context, userID, updateID string) (*models.Update, error) {
	update, ownerID, err := a.updates.GetByID(ctx, updateID)
	if err != nil {
		return nil, err
	}

	if ownerID != userID {
		return nil, a.policy.Deny("Update not found", "Not authorized to access this update")
	}

	return update, nil
}

// AuthorizeUpdatePoint returns the point iff its chain's root owner is the caller
func (a *OwnerAuthorizer) AuthorizeUpdatePoint(ctx context.Context, userID, pointID string) (*models.UpdatePoint, error) {
	point, ownerID, err := a.points.GetByID(ctx, pointID)
	if err != nil {
		return nil, err
	}

	if ownerID != userID {
		return nil, a.policy.Deny("Update point not found", "Not authorized to access this update point")
	}

	return point, nil
}
