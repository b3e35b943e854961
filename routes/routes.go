package routes

import (
	"github.com/gorilla/mux"

	"github.com/pushkarbw/sample-e-com-sub003/controllers"
	"github.com/pushkarbw/sample-e-com-sub003/middleware"
)

// RegisterRoutes sets up all the routes for the application. revocations
// is consulted by the auth middleware for tokens invalidated by logout.
func RegisterRoutes(
	router *mux.Router,
	revocations middleware.TokenChecker,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
) {
	// Public routes
	router.HandleFunc("/auth/signup", userController.Signup).Methods("POST")
	router.HandleFunc("/auth/login", userController.Login).Methods("POST")
	router.HandleFunc("/auth/logout", userController.Logout).Methods("POST")

	// Product routes; auth is optional so a logged-in caller is visible to
	// handlers but anonymous browsing works. Fixed paths must be
	// registered before the {id} catch-all.
	products := router.PathPrefix("/products").Subrouter()
	products.Use(middleware.OptionalAuth(revocations))
	products.HandleFunc("", productController.GetProducts).Methods("GET")
	products.HandleFunc("/featured", productController.GetFeaturedProducts).Methods("GET")
	products.HandleFunc("/categories", productController.GetCategories).Methods("GET")
	products.HandleFunc("/{id}", productController.GetProductByID).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.RequireAuth(revocations))
	protected.HandleFunc("/auth/profile", userController.GetProfile).Methods("GET")

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/{itemId}", cartController.UpdateCartItem).Methods("PUT")
	protected.HandleFunc("/cart/{itemId}", cartController.RemoveFromCart).Methods("DELETE")

	// Order routes
	protected.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	protected.HandleFunc("/orders/{id}/cancel", orderController.CancelOrder).Methods("PUT")
}
