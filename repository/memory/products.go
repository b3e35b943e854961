// Package memory implements the repository interfaces over mutex-guarded
// maps. It is the default backend; all data lives for the process lifetime
// only.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// ProductRepo is an in-memory ProductRepository. Listing order is
// insertion order, tracked separately because map iteration is random.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

// NewProductRepo returns an empty in-memory product repository.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: make(map[string]models.Product)}
}

func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.products[id]
		if !matches(p, filter) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return []models.Product{}, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matches(p models.Product, f repository.ProductFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

func (r *ProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := []models.Product{}
	for _, id := range r.order {
		p := r.products[id]
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range r.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return repository.ErrNotFound
	}
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Stock += delta
	r.products[id] = p
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
