package client_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushkarbw/sample-e-com-sub003/client"
	"github.com/pushkarbw/sample-e-com-sub003/controllers"
	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository/memory"
	"github.com/pushkarbw/sample-e-com-sub003/routes"
	"github.com/pushkarbw/sample-e-com-sub003/services"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	products := memory.NewProductRepo()
	require.NoError(t, memory.Seed(context.Background(), products))
	userRepo := memory.NewUserRepo()
	cartRepo := memory.NewCartRepo()
	orderRepo := memory.NewOrderRepo()

	authService := services.NewAuthService(userRepo)
	productService := services.NewProductService(products)
	cartService := services.NewCartService(cartRepo, products)
	orderService := services.NewOrderService(orderRepo, cartRepo, products, userRepo, nil)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, authService,
		controllers.NewUserController(authService),
		controllers.NewProductController(productService),
		controllers.NewCartController(cartService),
		controllers.NewOrderController(orderService),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func testAddress() models.Address {
	return models.Address{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "US",
	}
}

// Full shopper journey: signup, browse, cart, checkout, history, cancel.
func TestShoppingJourney(t *testing.T) {
	baseURL := startServer(t).URL
	ctx := context.Background()
	c := client.New(baseURL, client.NewMemoryCredentialStore())

	user, err := c.Signup(ctx, client.SignupParams{
		Email:     "shopper@example.com",
		Password:  "hunter22",
		FirstName: "Sam",
		LastName:  "Shopper",
	})
	require.NoError(t, err)
	assert.True(t, c.Session().Authenticated())
	assert.Equal(t, "shopper@example.com", user.Email)

	page, err := c.Products(ctx, client.ProductQuery{Search: "Wireless Headphones"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	product := page.Data[0]
	startingStock := product.Stock

	view, err := c.AddToCart(ctx, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.InDelta(t, 3*product.Price, view.TotalAmount, 0.001)

	view, err = c.UpdateCartItem(ctx, view.Items[0].ID, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2*product.Price, view.TotalAmount, 0.001)

	order, err := c.Checkout(ctx, client.CheckoutParams{
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 2*product.Price, order.Subtotal, 0.001)

	view, err = c.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	live, err := c.Product(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, startingStock-2, live.Stock)

	orders, err := c.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	cancelled, err := c.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	live, err = c.Product(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, startingStock, live.Stock)
}

func TestCheckoutOnEmptyCartSurfacesError(t *testing.T) {
	baseURL := startServer(t).URL
	ctx := context.Background()
	c := client.New(baseURL, client.NewMemoryCredentialStore())

	_, err := c.Signup(ctx, client.SignupParams{Email: "empty@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = c.Checkout(ctx, client.CheckoutParams{ShippingAddress: testAddress()})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Contains(t, apiErr.Message, "cart is empty")
}

func TestRehydrateRestoresPersistedSession(t *testing.T) {
	baseURL := startServer(t).URL
	ctx := context.Background()
	store := client.NewMemoryCredentialStore()

	first := client.New(baseURL, store)
	_, err := first.Signup(ctx, client.SignupParams{Email: "persist@example.com", Password: "hunter22"})
	require.NoError(t, err)

	// A fresh client over the same store picks the session back up.
	second := client.New(baseURL, store)
	assert.False(t, second.Session().Authenticated())
	require.NoError(t, second.Rehydrate(ctx))
	require.True(t, second.Session().Authenticated())
	assert.Equal(t, "persist@example.com", second.Session().User().Email)
	assert.False(t, second.Session().Loading())
}

func TestRehydrateWithInvalidTokenFallsBackToLoggedOut(t *testing.T) {
	baseURL := startServer(t).URL
	ctx := context.Background()
	store := client.NewMemoryCredentialStore()
	require.NoError(t, store.Save(&client.StoredCredentials{
		Token: "stale-or-forged-token",
		User:  &models.User{ID: "cached", Email: "cached@example.com"},
	}))

	c := client.New(baseURL, store)
	require.NoError(t, c.Rehydrate(ctx))

	assert.False(t, c.Session().Authenticated())
	assert.Empty(t, c.Session().Token())
	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestRehydrateWithNoStoredSessionIsNoop(t *testing.T) {
	baseURL := startServer(t).URL
	c := client.New(baseURL, client.NewMemoryCredentialStore())

	require.NoError(t, c.Rehydrate(context.Background()))
	assert.False(t, c.Session().Authenticated())
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	baseURL := startServer(t).URL
	ctx := context.Background()
	store := client.NewMemoryCredentialStore()

	first := client.New(baseURL, store)
	_, err := first.Signup(ctx, client.SignupParams{Email: "race@example.com", Password: "hunter22"})
	require.NoError(t, err)

	second := client.New(baseURL, store)
	require.NoError(t, second.Rehydrate(ctx))
	require.True(t, second.Session().Authenticated())

	// First client logs out, revoking the shared token server-side. The
	// second client's next call is rejected and must fall back to the
	// logged-out state on its own.
	first.Logout(ctx)

	_, err = second.Cart(ctx)
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))
	assert.False(t, second.Session().Authenticated())
	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestLogoutClearsLocalStateEvenIfServerUnreachable(t *testing.T) {
	server := startServer(t)
	ctx := context.Background()
	store := client.NewMemoryCredentialStore()

	c := client.New(server.URL, store)
	_, err := c.Signup(ctx, client.SignupParams{Email: "offline@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.True(t, c.Session().Authenticated())

	// The server goes away; logout's server-side invalidation is
	// best-effort and must not block the local transition.
	server.Close()
	c.Logout(ctx)

	assert.False(t, c.Session().Authenticated())
	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileCredentialStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := client.NewFileCredentialStore(path)

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	saved := &client.StoredCredentials{
		Token: "token-123",
		User:  &models.User{ID: "u1", Email: "file@example.com"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token-123", loaded.Token)
	assert.Equal(t, "file@example.com", loaded.User.Email)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	require.NoError(t, store.Clear())
}
