package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/pushkarbw/sample-e-com-sub003/configs"
	"github.com/pushkarbw/sample-e-com-sub003/controllers"
	"github.com/pushkarbw/sample-e-com-sub003/middleware"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
	"github.com/pushkarbw/sample-e-com-sub003/repository/memory"
	"github.com/pushkarbw/sample-e-com-sub003/repository/mongodb"
	"github.com/pushkarbw/sample-e-com-sub003/routes"
	"github.com/pushkarbw/sample-e-com-sub003/services"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := configs.Load()
	utils.JwtKey = []byte(cfg.JWTSecret)

	var (
		productRepo repository.ProductRepository
		userRepo    repository.UserRepository
		cartRepo    repository.CartRepository
		orderRepo   repository.OrderRepository
	)

	switch cfg.Storage {
	case configs.StorageMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Fatal(err)
			}
		}()
		repos := mongodb.NewRepos(client, cfg.MongoDatabase)
		productRepo = repos.Products
		userRepo = repos.Users
		cartRepo = repos.Carts
		orderRepo = repos.Orders
	default:
		products := memory.NewProductRepo()
		if err := memory.Seed(context.Background(), products); err != nil {
			log.Fatal(err)
		}
		productRepo = products
		userRepo = memory.NewUserRepo()
		cartRepo = memory.NewCartRepo()
		orderRepo = memory.NewOrderRepo()
	}

	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, userRepo, emailService)

	// Initialize controllers
	userController := controllers.NewUserController(authService)
	productController := controllers.NewProductController(productService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, authService, userController, productController, cartController, orderController)

	slog.Info("server is running", "port", cfg.Port, "storage", cfg.Storage)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, middleware.LoggingMiddleware(router)))
}
