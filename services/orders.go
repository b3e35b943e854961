package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// OrderService runs checkout and order lifecycle operations. A single
// mutex serializes the stock read-modify-write sequences of checkout and
// cancellation so they stay correct under concurrent requests.
type OrderService struct {
	mu       sync.Mutex
	orders   repository.OrderRepository
	carts    repository.CartRepository
	products repository.ProductRepository
	users    repository.UserRepository
	mailer   *utils.EmailService
}

// NewOrderService builds an OrderService. mailer may be nil to disable
// confirmation emails entirely.
func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	mailer *utils.EmailService,
) *OrderService {
	return &OrderService{
		orders:   orders,
		carts:    carts,
		products: products,
		users:    users,
		mailer:   mailer,
	}
}

// CheckoutInput is the request body of a checkout.
type CheckoutInput struct {
	ShippingAddress models.Address `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// Checkout converts the user's cart into an order. Stages run in strict
// order: validate input, load cart, re-validate stock, compute totals,
// persist the order, decrement stock, empty the cart. Any failure before
// the order is persisted leaves every store untouched.
func (s *OrderService) Checkout(ctx context.Context, userID string, in CheckoutInput) (*models.Order, error) {
	if missing := missingAddressFields(in.ShippingAddress); len(missing) > 0 {
		return nil, errs.Validation("shipping address missing: %s", strings.Join(missing, ", "))
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.carts.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.EmptyCart()
	}

	// Stock re-check against live products. Time may have passed since the
	// items were added and stock is shared across all carts, so every line
	// is verified before any mutation begins.
	lines := make([]models.OrderLine, 0, len(items))
	subtotal := 0.0
	for _, item := range items {
		product, err := s.products.Get(ctx, item.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NotFound("product")
		}
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, errs.InsufficientStock(product.Name)
		}
		lineSubtotal := item.UnitPrice * float64(item.Quantity)
		lines = append(lines, models.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  lineSubtotal,
		})
		subtotal += lineSubtotal
	}

	// Shipping and tax are carried as explicit zero lines; real
	// computation is out of scope.
	now := time.Now()
	order := &models.Order{
		ID:              uuid.NewString(),
		OrderNumber:     newOrderNumber(now),
		UserID:          userID,
		Items:           lines,
		Subtotal:        subtotal,
		ShippingCost:    0,
		Tax:             0,
		Total:           subtotal,
		Status:          models.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	for _, line := range order.Items {
		if err := s.products.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}

	s.notifyOrderPlaced(ctx, userID, order)
	return order, nil
}

// List returns the user's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Get returns one of the user's orders.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return s.ownedOrder(ctx, userID, orderID)
}

// Cancel moves a pending order to cancelled and restores stock for every
// line, using the quantities frozen in the order. Non-pending orders
// cannot be cancelled.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, errs.InvalidState("order with status %q cannot be cancelled", order.Status)
	}

	for _, line := range order.Items {
		if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled); err != nil {
		return nil, err
	}
	return s.orders.Get(ctx, order.ID)
}

func (s *OrderService) ownedOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NotFound("order")
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errs.NotFound("order")
	}
	return order, nil
}

// notifyOrderPlaced sends the confirmation email best-effort in the
// background; a mail failure never fails a placed order.
func (s *OrderService) notifyOrderPlaced(ctx context.Context, userID string, order *models.Order) {
	if s.mailer == nil {
		return
	}
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return
	}
	go func(email string, order models.Order) {
		if err := s.mailer.SendOrderConfirmationEmail(email, &order); err != nil {
			slog.Error("failed to send order confirmation", "email", email, "error", err)
		}
	}(user.Email, *order)
}

func missingAddressFields(a models.Address) []string {
	missing := []string{}
	if a.Street == "" {
		missing = append(missing, "street")
	}
	if a.City == "" {
		missing = append(missing, "city")
	}
	if a.State == "" {
		missing = append(missing, "state")
	}
	if a.ZipCode == "" {
		missing = append(missing, "zip")
	}
	if a.Country == "" {
		missing = append(missing, "country")
	}
	return missing
}

// newOrderNumber derives a human-readable order number from the placement
// time plus a short random suffix to disambiguate same-second orders.
func newOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102150405"), suffix)
}
