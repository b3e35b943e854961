package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushkarbw/sample-e-com-sub003/controllers"
	"github.com/pushkarbw/sample-e-com-sub003/repository/memory"
	"github.com/pushkarbw/sample-e-com-sub003/routes"
	"github.com/pushkarbw/sample-e-com-sub003/services"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) *mux.Router {
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
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return recorder, env
}

func signup(t *testing.T, router *mux.Router, email string) string {
	t.Helper()
	recorder, env := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":     email,
		"password":  "hunter22",
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/cart"},
		{http.MethodPost, "/cart"},
		{http.MethodDelete, "/cart"},
		{http.MethodPut, "/cart/some-item"},
		{http.MethodDelete, "/cart/some-item"},
		{http.MethodGet, "/orders"},
		{http.MethodPost, "/orders"},
		{http.MethodGet, "/orders/some-order"},
		{http.MethodPut, "/orders/some-order/cancel"},
		{http.MethodGet, "/auth/profile"},
	}
	for _, route := range protected {
		t.Run(fmt.Sprintf("%s %s", route.method, route.path), func(t *testing.T) {
			recorder, env := doJSON(t, router, route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestInvalidTokenReturns403(t *testing.T) {
	router := newTestRouter(t)

	recorder, env := doJSON(t, router, http.MethodGet, "/cart", "not-a-real-token", nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, env.Success)
}

func TestRevokedTokenReturns403(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "revoked@example.com")

	recorder, _ := doJSON(t, router, http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, _ = doJSON(t, router, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, env := doJSON(t, router, http.MethodGet, "/auth/profile", token, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, env.Success)
}

func TestProductsPaginationEnvelope(t *testing.T) {
	router := newTestRouter(t)

	recorder, env := doJSON(t, router, http.MethodGet, "/products?page=1&limit=4", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, env.Success)

	var page struct {
		Data       []json.RawMessage `json:"data"`
		Pagination utils.Pagination  `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Data, 4)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 4, page.Pagination.Limit)
	assert.Equal(t, 10, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestProductListingFilters(t *testing.T) {
	router := newTestRouter(t)

	t.Run("featured endpoint honors limit", func(t *testing.T) {
		_, env := doJSON(t, router, http.MethodGet, "/products/featured?limit=2", "", nil)
		var products []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &products))
		assert.Len(t, products, 2)
	})

	t.Run("categories are distinct", func(t *testing.T) {
		_, env := doJSON(t, router, http.MethodGet, "/products/categories", "", nil)
		var categories []string
		require.NoError(t, json.Unmarshal(env.Data, &categories))
		assert.Equal(t, []string{"Accessories", "Electronics", "Home", "Sports"}, categories)
	})

	t.Run("search narrows the listing", func(t *testing.T) {
		_, env := doJSON(t, router, http.MethodGet, "/products?search=headphones", "", nil)
		var page struct {
			Pagination utils.Pagination `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Equal(t, 1, page.Pagination.Total)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		recorder, env := doJSON(t, router, http.MethodGet, "/products/does-not-exist", "", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.False(t, env.Success)
	})
}

func TestSignupLoginProfileFlow(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "flow@example.com")

	recorder, env := doJSON(t, router, http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var user struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "flow@example.com", user.Email)

	t.Run("login with wrong password is 401", func(t *testing.T) {
		recorder, env := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "flow@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, env.Success)
	})

	t.Run("login returns a fresh token", func(t *testing.T) {
		recorder, env := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "flow@example.com",
			"password": "hunter22",
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		var result struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.NotEmpty(t, result.Token)
	})
}

func TestCartEndpointsReturnAggregatedView(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "cart@example.com")

	// Find a product to buy.
	_, env := doJSON(t, router, http.MethodGet, "/products?limit=1", "", nil)
	var page struct {
		Data []struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.NotEmpty(t, page.Data)
	productID := page.Data[0].ID

	recorder, env := doJSON(t, router, http.MethodPost, "/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  2,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var view struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		TotalItems  int     `json:"totalItems"`
		TotalAmount float64 `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.TotalItems)
	assert.InDelta(t, 2*page.Data[0].Price, view.TotalAmount, 0.001)

	t.Run("add with zero quantity is 400", func(t *testing.T) {
		recorder, _ := doJSON(t, router, http.MethodPost, "/cart", token, map[string]interface{}{
			"productId": productID,
			"quantity":  0,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("clear returns an empty view", func(t *testing.T) {
		recorder, env := doJSON(t, router, http.MethodDelete, "/cart", token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		var cleared struct {
			TotalItems int `json:"totalItems"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &cleared))
		assert.Zero(t, cleared.TotalItems)
	})
}
