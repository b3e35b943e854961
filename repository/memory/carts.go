package memory

import (
	"context"
	"sync"

	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// CartRepo is an in-memory CartRepository. Items keep insertion order per
// user so the aggregated view is stable across reads.
type CartRepo struct {
	mu    sync.RWMutex
	items map[string]models.CartItem
	order []string
}

// NewCartRepo returns an empty in-memory cart repository.
func NewCartRepo() *CartRepo {
	return &CartRepo{items: make(map[string]models.CartItem)}
}

func (r *CartRepo) ItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []models.CartItem{}
	for _, id := range r.order {
		item := r.items[id]
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *CartRepo) Get(ctx context.Context, id string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *CartRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		item := r.items[id]
		if item.UserID == userID && item.ProductID == productID {
			return &item, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CartRepo) Create(ctx context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *CartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

func (r *CartRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	r.remove(id)
	return nil
}

func (r *CartRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.UserID == userID {
			r.remove(item.ID)
		}
	}
	return nil
}

// remove must be called with the write lock held.
func (r *CartRepo) remove(id string) {
	delete(r.items, id)
	for i, iid := range r.order {
		if iid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
