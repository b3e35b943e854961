package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// CartService owns cart mutations and the aggregated cart view. Every
// mutation returns the full recomputed view so clients never reconcile
// partial state themselves.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartService builds a CartService.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the aggregated cart view for a user. Each line joins the
// stored item with a live product snapshot; the line subtotal uses the
// unit price captured when the item was added, never the live price.
// An empty cart yields zero totals, never an error.
func (s *CartService) Get(ctx context.Context, userID string) (*models.CartView, error) {
	items, err := s.carts.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{Items: []models.CartLine{}}
	for _, item := range items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// A vanished product leaves the line in place with a nil snapshot.
		line := models.CartLine{
			ID:        item.ID,
			Product:   product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice * float64(item.Quantity),
		}
		view.Items = append(view.Items, line)
		view.TotalItems += item.Quantity
		view.TotalAmount += line.Subtotal
	}
	return view, nil
}

// Add puts quantity units of a product into the user's cart. If a line for
// the product already exists its quantity is incremented, keeping the
// at-most-one-line-per-product invariant; otherwise a new line captures
// the current product price.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (*models.CartView, error) {
	if productID == "" {
		return nil, errs.Validation("productId is required")
	}
	if quantity <= 0 {
		return nil, errs.Validation("quantity must be greater than zero")
	}

	product, err := s.products.Get(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NotFound("product")
	}
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, errs.InsufficientStock(product.Name)
	}

	existing, err := s.carts.GetByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		if err := s.carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, repository.ErrNotFound):
		item := &models.CartItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
			AddedAt:   time.Now(),
		}
		if err := s.carts.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.Get(ctx, userID)
}

// Update replaces a cart line's quantity. Stock is deliberately not
// re-checked here: a cart may temporarily exceed available stock and
// checkout is the enforcement point.
func (s *CartService) Update(ctx context.Context, userID, itemID string, quantity int) (*models.CartView, error) {
	if quantity <= 0 {
		return nil, errs.Validation("quantity must be greater than zero")
	}

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Remove deletes a cart line.
func (s *CartService) Remove(ctx context.Context, userID, itemID string) (*models.CartView, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, item.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Clear deletes every cart line the user owns. Clearing an already empty
// cart succeeds.
func (s *CartService) Clear(ctx context.Context, userID string) (*models.CartView, error) {
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// ownedItem fetches a cart item and enforces ownership. A foreign item
// reports not-found, indistinguishable from absence.
func (s *CartService) ownedItem(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	item, err := s.carts.Get(ctx, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NotFound("cart item")
	}
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, errs.NotFound("cart item")
	}
	return item, nil
}
