package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// OrderRepo is an in-memory OrderRepository.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewOrderRepo returns an empty in-memory order repository.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[string]models.Order)}
}

func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = *order
	return nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	// Newest first, matching what order history pages expect.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	r.orders[id] = o
	return nil
}
