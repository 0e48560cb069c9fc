package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Food is one catalog entry. Loaded once at startup, never changed after.
type Food struct {
	Name        string
	Calorie     decimal.Decimal
	Description string
	Price       decimal.Decimal
}

// Customer is loaded from the customers file and mutated in memory only
// (balance, cart, order history). It is never written back; orders are the
// only persisted trace of a session.
type Customer struct {
	UserName string
	Password string
	ID       int64
	Name     string
	Balance  decimal.Decimal
	Cart     *Cart
	Orders   []*Order
}

// Credentials is a transient username/password pair used for login.
type Credentials struct {
	UserName string
	Password string
}

// Cart holds at most one item per distinct food name plus a cached running
// total. The total always equals the sum of the item line prices.
type Cart struct {
	Items []OrderItem
	Price decimal.Decimal
}

func NewEmptyCart() *Cart {
	return &Cart{Items: []OrderItem{}, Price: decimal.Zero}
}

// OrderItem is a food with a piece count and the line price computed at the
// time the item was added (unit price x pieces, never re-priced).
type OrderItem struct {
	Food   Food
	Pieces int
	Price  decimal.Decimal
}

// Order is a snapshot of a cart at confirmation time. ID is nil until the
// data store persists the order and assigns one.
type Order struct {
	ID         *int64
	CustomerID int64
	Items      []OrderItem
	Price      decimal.Decimal
	CreatedAt  time.Time
}

// FoodSelection is what the view hands back from the shopping prompt.
// Done reports that the customer finished picking items.
type FoodSelection struct {
	Food   *Food
	Pieces int
	Done   bool
}
