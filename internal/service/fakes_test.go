package service

import (
	"context"
	"fmt"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
)

// In-memory fakes for the repository and token interfaces. They mimic the
// store contract: IDs assigned on create, ErrNotFound on misses, ConflictError
// on unique violations, and owner filters applied inside the calls.

type fakeUserRepo struct {
	users      map[string]*models.User
	nextID     int
	created    []*models.User
	updated    []*models.User
	deleted    []string
	lockedGets []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return &domain.ConflictError{Field: "username"}
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	stored := *user
	r.users[user.ID] = &stored
	r.created = append(r.created, &stored)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) GetByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	r.lockedGets = append(r.lockedGets, id)
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copy := *user
			return &copy, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %s: %w", user.ID, domain.ErrNotFound)
	}
	stored := *user
	r.users[user.ID] = &stored
	r.updated = append(r.updated, &stored)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// fakeTxManager runs the function directly; transactional behavior itself is
// the store's concern.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(user *models.User) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + user.ID, nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
	nextID   int
	created  []*models.Product
	updated  []*models.Product
	deleted  []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*models.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	for _, existing := range r.products {
		if existing.Name == product.Name && existing.UserID == product.UserID {
			return &domain.ConflictError{Field: "name"}
		}
	}
	r.nextID++
	product.ID = fmt.Sprintf("product-%d", r.nextID)
	stored := *product
	r.products[product.ID] = &stored
	r.created = append(r.created, &stored)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id, userID string) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok || product.UserID != userID {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	copy := *product
	return &copy, nil
}

func (r *fakeProductRepo) GetByIDOnly(ctx context.Context, id string) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	copy := *product
	return &copy, nil
}

func (r *fakeProductRepo) List(ctx context.Context, userID string) ([]models.Product, error) {
	var out []models.Product
	for _, product := range r.products {
		if product.UserID == userID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	existing, ok := r.products[product.ID]
	if !ok || existing.UserID != product.UserID {
		return fmt.Errorf("product %s: %w", product.ID, domain.ErrNotFound)
	}
	stored := *product
	r.products[product.ID] = &stored
	r.updated = append(r.updated, &stored)
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id, userID string) error {
	existing, ok := r.products[id]
	if !ok || existing.UserID != userID {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	delete(r.products, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeUpdateRepo struct {
	updates map[string]*models.Update
	owners  map[string]string // update ID -> root product owner
	nextID  int
	created []*models.Update
	updated []*models.Update
	deleted []string
}

func newFakeUpdateRepo() *fakeUpdateRepo {
	return &fakeUpdateRepo{
		updates: make(map[string]*models.Update),
		owners:  make(map[string]string),
	}
}

func (r *fakeUpdateRepo) put(update *models.Update, ownerID string) {
	stored := *update
	r.updates[update.ID] = &stored
	r.owners[update.ID] = ownerID
}

func (r *fakeUpdateRepo) Create(ctx context.Context, update *models.Update) error {
	r.nextID++
	update.ID = fmt.Sprintf("update-%d", r.nextID)
	stored := *update
	r.updates[update.ID] = &stored
	r.created = append(r.created, &stored)
	return nil
}

func (r *fakeUpdateRepo) GetByID(ctx context.Context, id string) (*models.Update, string, error) {
	update, ok := r.updates[id]
	if !ok {
		return nil, "", fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	copy := *update
	return &copy, r.owners[id], nil
}

func (r *fakeUpdateRepo) List(ctx context.Context, userID string) ([]models.Update, error) {
	var out []models.Update
	for id, update := range r.updates {
		if r.owners[id] == userID {
			out = append(out, *update)
		}
	}
	return out, nil
}

func (r *fakeUpdateRepo) Update(ctx context.Context, update *models.Update, userID string) error {
	if _, ok := r.updates[update.ID]; !ok || r.owners[update.ID] != userID {
		return fmt.Errorf("update %s: %w", update.ID, domain.ErrNotFound)
	}
	stored := *update
	r.updates[update.ID] = &stored
	r.updated = append(r.updated, &stored)
	return nil
}

func (r *fakeUpdateRepo) Delete(ctx context.Context, id, userID string) error {
	if _, ok := r.updates[id]; !ok || r.owners[id] != userID {
		return fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	delete(r.updates, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakePointRepo struct {
	points  map[string]*models.UpdatePoint
	owners  map[string]string // point ID -> root product owner
	nextID  int
	created []*models.UpdatePoint
	updated []*models.UpdatePoint
	deleted []string
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{
		points: make(map[string]*models.UpdatePoint),
		owners: make(map[string]string),
	}
}

func (r *fakePointRepo) put(point *models.UpdatePoint, ownerID string) {
	stored := *point
	r.points[point.ID] = &stored
	r.owners[point.ID] = ownerID
}

func (r *fakePointRepo) Create(ctx context.Context, point *models.UpdatePoint) error {
	r.nextID++
	point.ID = fmt.Sprintf("point-%d", r.nextID)
	stored := *point
	r.points[point.ID] = &stored
	r.created = append(r.created, &stored)
	return nil
}

func (r *fakePointRepo) GetByID(ctx context.Context, id string) (*models.UpdatePoint, string, error) {
	point, ok := r.points[id]
	if !ok {
		return nil, "", fmt.Errorf("update point %s: %w", id, domain.ErrNotFound)
	}
	copy := *point
	return &copy, r.owners[id], nil
}

func (r *fakePointRepo) List(ctx context.Context, userID string) ([]models.UpdatePoint, error) {
	var out []models.UpdatePoint
	for id, point := range r.points {
		if r.owners[id] == userID {
			out = append(out, *point)
		}
	}
	return out, nil
}

func (r *fakePointRepo) Update(ctx context.Context, point *models.UpdatePoint, userID string) error {
	if _, ok := r.points[point.ID]; !ok || r.owners[point.ID] != userID {
		return fmt.Errorf("update point %s: %w", point.ID, domain.ErrNotFound)
	}
	stored := *point
	r.points[point.ID] = &stored
	r.updated = append(r.updated, &stored)
	return nil
}

func (r *fakePointRepo) Delete(ctx context.Context, id, userID string) error {
	if _, ok := r.points[id]; !ok || r.owners[id] != userID {
		return fmt.Errorf("update point %s: %w", id, domain.ErrNotFound)
	}
	delete(r.points, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// fakeAuthorizer returns the configured record or error per resource family.
type fakeAuthorizer struct {
	product    *models.Product
	productErr error
	update     *models.Update
	updateErr  error
	point      *models.UpdatePoint
	pointErr   error
}

func (a *fakeAuthorizer) AuthorizeProduct(ctx context.Context, userID, productID string) (*models.Product, error) {
	if a.productErr != nil {
		return nil, a.productErr
	}
	return a.product, nil
}

func (a *fakeAuthorizer) AuthorizeUpdate(ctx context.Context, userID, updateID string) (*models.Update, error) {
	if a.updateErr != nil {
		return nil, a.updateErr
	}
	return a.update, nil
}

func (a *fakeAuthorizer) AuthorizeUpdatePoint(ctx context.Context, userID, pointID string) (*models.UpdatePoint, error) {
	if a.pointErr != nil {
		return nil, a.pointErr
	}
	return a.point, nil
}
