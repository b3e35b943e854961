package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401/403 APIError.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// Client talks to the storefront API and keeps the session in sync with
// every response. All calls resolve or fail once; there are no automatic
// retries.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
}

// New builds a Client whose session persists through store.
func New(baseURL string, store CredentialStore) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
		session: NewSession(store),
	}
}

// Session exposes the client's auth state.
func (c *Client) Session() *Session {
	return c.session
}

// Rehydrate restores a persisted session on startup. A stored token sets
// the cached user optimistically, then the profile endpoint revalidates
// it; on failure all persisted auth state is cleared and the client falls
// back to unauthenticated.
func (c *Client) Rehydrate(ctx context.Context) error {
	c.session.setLoading(true)
	defer c.session.setLoading(false)

	creds, err := c.session.store.Load()
	if err != nil {
		return err
	}
	if creds == nil || creds.Token == "" {
		return nil
	}

	c.session.setMemoryOnly(creds.Token, creds.User)

	user, err := c.Profile(ctx)
	if err != nil {
		// Profile itself clears the session on an unauthorized response;
		// clear here too so transport failures do not leave a stale
		// optimistic user behind.
		c.session.clear()
		return nil
	}
	c.session.set(creds.Token, user)
	return nil
}

// Signup registers an account and signs the session in.
type SignupParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (c *Client) Signup(ctx context.Context, params SignupParams) (*models.User, error) {
	var result struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", params, &result); err != nil {
		return nil, err
	}
	c.session.set(result.Token, result.User)
	return result.User, nil
}

// Login authenticates and signs the session in.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var result struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.session.set(result.Token, result.User)
	return result.User, nil
}

// Logout clears local state first, then fires a best-effort server-side
// token invalidation that never blocks the local transition.
func (c *Client) Logout(ctx context.Context) {
	token := c.session.Token()
	c.session.clear()
	if token == "" {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/logout", nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if resp, err := c.httpc.Do(req); err == nil {
		resp.Body.Close()
	}
}

// Profile fetches the authenticated user.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ProductQuery narrows a product listing request.
type ProductQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Featured *bool
}

// ProductPage mirrors the paginated listing payload.
type ProductPage struct {
	Data       []models.Product `json:"data"`
	Pagination utils.Pagination `json:"pagination"`
}

// Products lists catalog products.
func (c *Client) Products(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Featured != nil {
		values.Set("featured", strconv.FormatBool(*query.Featured))
	}
	path := "/products"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Product fetches a single product.
func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FeaturedProducts fetches up to limit featured products.
func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	path := "/products/featured"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories fetches the distinct product categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Cart fetches the aggregated cart.
func (c *Client) Cart(ctx context.Context) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// AddToCart adds quantity units of a product and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*models.CartView, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var view models.CartView
	if err := c.do(ctx, http.MethodPost, "/cart", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateCartItem replaces a cart line's quantity and returns the updated
// cart.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartView, error) {
	body := map[string]int{"quantity": quantity}
	var view models.CartView
	if err := c.do(ctx, http.MethodPut, "/cart/"+itemID, body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveCartItem deletes a cart line and returns the updated cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodDelete, "/cart/"+itemID, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodDelete, "/cart", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// CheckoutParams is the checkout request body.
type CheckoutParams struct {
	ShippingAddress models.Address `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// Checkout places an order from the current cart.
func (c *Client) Checkout(ctx context.Context, params CheckoutParams) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists the user's order history.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one order.
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels a pending order.
func (c *Client) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+id+"/cancel", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do performs one API call. An unauthorized response on a call that
// carried a token clears the session — the cross-cutting logout fall-back
// every call site gets for free.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	token := c.session.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		if token != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			c.session.clear()
		}
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}
