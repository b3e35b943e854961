package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pushkarbw/sample-e-com-sub003/services"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// ProductController handles catalog requests.
type ProductController struct {
	products *services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// GetProducts lists products with paging, search, category and featured
// filters from the query string.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := services.ListOptions{
		Page:     intQuery(query.Get("page"), 1),
		Limit:    intQuery(query.Get("limit"), 0),
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}
	if raw := query.Get("featured"); raw != "" {
		featured := raw == "true"
		opts.Featured = &featured
	}

	page, err := pc.products.List(r.Context(), opts)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

// GetFeaturedProducts lists featured products.
func (pc *ProductController) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r.URL.Query().Get("limit"), 0)
	products, err := pc.products.Featured(r.Context(), limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// GetCategories lists the distinct product categories.
func (pc *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := pc.products.Categories(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

// GetProductByID returns a single product.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	product, err := pc.products.Get(r.Context(), params["id"])
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func intQuery(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
