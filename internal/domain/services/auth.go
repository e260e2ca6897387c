package services

import (
	"context"

	"changelog/internal/domain/models"
)

// ChainAuthorizer resolves the ownership chain of a nested resource to the
// root product owner and compares it to the caller.
//
// Design principle: services call the authorizer before operating on nested
// resources; how a mismatch is reported (404 vs 403) is decided once by the
// configured AuthorizationPolicy, not per call site.
type ChainAuthorizer interface {
	// AuthorizeProduct returns the product iff the caller owns it
	AuthorizeProduct(ctx context.Context, userID, productID string) (*models.Product, error)

	// AuthorizeUpdate returns the update iff the caller owns its product
	AuthorizeUpdate(ctx context.Context, userID, updateID string) (*models.Update, error)

	// AuthorizeUpdatePoint returns the point iff the caller owns its
	// update's product
	AuthorizeUpdatePoint(ctx context.Context, userID, pointID string) (*models.UpdatePoint, error)
}
