package models

import "time"

// Order statuses. Only pending orders can be cancelled through the API;
// the fulfilment transitions (processing/shipped/delivered) are reserved
// for back-office tooling.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Address is a shipping destination supplied at checkout.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipcode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

// OrderLine is a frozen copy of a cart line taken at checkout time.
// It is deliberately decoupled from the live Product so historical orders
// stay immutable when product data later changes.
type OrderLine struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Subtotal  float64 `bson:"subtotal" json:"subtotal"`
}

// Order is a placed order, created atomically from a non-empty cart.
type Order struct {
	ID              string      `bson:"_id,omitempty" json:"id"`
	OrderNumber     string      `bson:"order_number" json:"orderNumber"`
	UserID          string      `bson:"user_id" json:"userId"`
	Items           []OrderLine `bson:"items" json:"items"`
	Subtotal        float64     `bson:"subtotal" json:"subtotal"`
	ShippingCost    float64     `bson:"shipping_cost" json:"shippingCost"`
	Tax             float64     `bson:"tax" json:"tax"`
	Total           float64     `bson:"total" json:"total"`
	Status          string      `bson:"status" json:"status"`
	ShippingAddress Address     `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string      `bson:"payment_method" json:"paymentMethod"`
	CreatedAt       time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updatedAt"`
}
