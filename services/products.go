// Package services holds the business logic. Services depend on the
// repository interfaces and return domain errors from package errs.
package services

import (
	"context"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ProductService serves catalog reads.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService builds a ProductService.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// ListOptions carries the query parameters of a product listing.
type ListOptions struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Featured *bool
}

// ProductPage is one page of products plus pagination metadata.
type ProductPage struct {
	Data       []models.Product `json:"data"`
	Pagination utils.Pagination `json:"pagination"`
}

// List returns a filtered, paginated product listing.
func (s *ProductService) List(ctx context.Context, opts ListOptions) (*ProductPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultPageLimit
	}
	if opts.Limit > maxPageLimit {
		opts.Limit = maxPageLimit
	}

	products, total, err := s.products.List(ctx, repository.ProductFilter{
		Search:   opts.Search,
		Category: opts.Category,
		Featured: opts.Featured,
		Page:     opts.Page,
		Limit:    opts.Limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	return &ProductPage{
		Data: products,
		Pagination: utils.Pagination{
			Page:       opts.Page,
			Limit:      opts.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errs.NotFound("product")
	}
	return product, err
}

// Featured returns up to limit featured products.
func (s *ProductService) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	return s.products.Featured(ctx, limit)
}

// Categories returns the distinct product categories.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}
