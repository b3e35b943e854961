package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/middleware"
	"github.com/pushkarbw/sample-e-com-sub003/services"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// CartController handles cart-related requests. Every handler responds
// with the full aggregated cart view.
type CartController struct {
	carts *services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart retrieves the user's aggregated cart.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	view, err := cc.carts.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// AddToCart adds a product to the user's cart.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	var in struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, errs.Validation("invalid request body"))
		return
	}

	view, err := cc.carts.Add(r.Context(), claims.UserID, in.ProductID, in.Quantity)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// UpdateCartItem replaces a cart line's quantity.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, errs.Validation("invalid request body"))
		return
	}

	itemID := mux.Vars(r)["itemId"]
	view, err := cc.carts.Update(r.Context(), claims.UserID, itemID, in.Quantity)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// RemoveFromCart deletes a cart line.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	itemID := mux.Vars(r)["itemId"]
	view, err := cc.carts.Remove(r.Context(), claims.UserID, itemID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// ClearCart deletes every line in the user's cart.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	view, err := cc.carts.Clear(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}
