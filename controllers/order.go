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

// OrderController handles order-related requests.
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder runs checkout on the user's cart.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	var in services.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, errs.Validation("invalid request body"))
		return
	}

	order, err := oc.orders.Checkout(r.Context(), claims.UserID, in)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, order)
}

// GetOrders retrieves all orders for the authenticated user.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	orders, err := oc.orders.List(r.Context(), claims.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves one of the user's orders.
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	order, err := oc.orders.Get(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}

// CancelOrder cancels one of the user's pending orders.
func (oc *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.WriteError(w, errs.Unauthorized("unauthorized"))
		return
	}

	order, err := oc.orders.Cancel(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}
