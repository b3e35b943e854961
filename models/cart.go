package models

import "time"

// CartItem is one product/quantity pairing in a user's cart. UnitPrice is
// captured when the item is added; later product price changes do not
// alter a standing cart line. At most one CartItem exists per
// (user, product) pair.
type CartItem struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	ProductID string    `bson:"product_id" json:"productId"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	UnitPrice float64   `bson:"unit_price" json:"unitPrice"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// CartLine is one line of the aggregated cart view: the stored item joined
// with a live product snapshot. Product is nil when the referenced product
// no longer exists.
type CartLine struct {
	ID        string   `json:"id"`
	Product   *Product `json:"product"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Subtotal  float64  `json:"subtotal"`
}

// CartView is the aggregated cart returned to clients after every cart
// read or mutation.
type CartView struct {
	Items       []CartLine `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount float64    `json:"totalAmount"`
}
