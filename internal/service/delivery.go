package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
	"food-delivery/internal/store"
)

// DeliveryServiceInterface is the business surface of the application:
// authentication, catalog listing, cart mutation and order creation.
type DeliveryServiceInterface interface {
	Authenticate(credentials *domain.Credentials) (*domain.Customer, error)
	ListAllFood() []domain.Food
	UpdateCart(customer *domain.Customer, food *domain.Food, pieces int) error
	CreateOrder(customer *domain.Customer) (*domain.Order, error)
}

type DeliveryService struct {
	store store.DataStoreInterface
	lg    *logger.Logger
}

func NewDeliveryService(st store.DataStoreInterface, lg *logger.Logger) DeliveryServiceInterface {
	return &DeliveryService{store: st, lg: lg}
}

// Authenticate matches the credentials against the loaded customers with
// exact string equality on both fields. Single attempt, no lockout.
func (ds *DeliveryService) Authenticate(credentials *domain.Credentials) (*domain.Customer, error) {
	if credentials == nil || credentials.UserName == "" || credentials.Password == "" {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrAuthentication)
	}
	for _, c := range ds.store.Customers() {
		if c.UserName == credentials.UserName && c.Password == credentials.Password {
			ds.lg.Debug("customer_authenticated", map[string]any{"customer_id": c.ID})
			return c, nil
		}
	}
	return nil, domain.ErrAuthentication
}

// ListAllFood returns the full catalog, unfiltered, in load order.
func (ds *DeliveryService) ListAllFood() []domain.Food {
	return ds.store.Foods()
}

// UpdateCart inserts, replaces or removes the cart entry for the given
// food. pieces == 0 removes an existing entry; pieces > 0 sets the entry
// to that count with a freshly computed line price, after checking the
// prospective cart total against the customer's balance. On rejection the
// cart is left exactly as it was.
func (ds *DeliveryService) UpdateCart(customer *domain.Customer, food *domain.Food, pieces int) error {
	if customer == nil || food == nil {
		return fmt.Errorf("%w: customer and food must be provided", domain.ErrInvalidArgument)
	}
	if pieces < 0 {
		return fmt.Errorf("%w: pieces must be >= 0", domain.ErrInvalidArgument)
	}

	cart := customer.Cart
	if cart == nil {
		cart = domain.NewEmptyCart()
		customer.Cart = cart
	}

	existing := -1
	for i := range cart.Items {
		if cart.Items[i].Food.Name == food.Name {
			existing = i
			break
		}
	}

	if pieces == 0 {
		if existing < 0 {
			return fmt.Errorf("%w: cannot remove non-existing item from cart", domain.ErrInvalidArgument)
		}
		removed := cart.Items[existing]
		cart.Items = append(cart.Items[:existing], cart.Items[existing+1:]...)
		cart.Price = cart.Price.Sub(removed.Price)
		ds.lg.Debug("cart_item_removed", map[string]any{"customer_id": customer.ID, "food": food.Name})
		return nil
	}

	newItemPrice := food.Price.Mul(decimal.NewFromInt(int64(pieces)))

	oldItemPrice := decimal.Zero
	if existing >= 0 {
		oldItemPrice = cart.Items[existing].Price
	}
	prospectiveTotal := cart.Price.Sub(oldItemPrice).Add(newItemPrice)

	if prospectiveTotal.Cmp(customer.Balance) > 0 {
		return &domain.LowBalanceError{Food: food.Name, Pieces: pieces}
	}

	updated := domain.OrderItem{Food: *food, Pieces: pieces, Price: newItemPrice}
	if existing >= 0 {
		cart.Items = append(cart.Items[:existing], cart.Items[existing+1:]...)
	}
	cart.Items = append(cart.Items, updated)
	cart.Price = prospectiveTotal
	ds.lg.Debug("cart_updated", map[string]any{"customer_id": customer.ID, "food": food.Name, "pieces": pieces})
	return nil
}

// CreateOrder snapshots the cart into an order, hands it to the data store
// for id assignment and durable append, records it on the customer, debits
// the balance by the persisted order's price and resets the cart. The
// debit uses the persisted price so id assignment can never change the
// charged amount.
func (ds *DeliveryService) CreateOrder(customer *domain.Customer) (*domain.Order, error) {
	if customer == nil {
		return nil, fmt.Errorf("%w: customer must be provided", domain.ErrInvalidArgument)
	}
	cart := customer.Cart
	if cart == nil || len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(cart.Items))
	copy(items, cart.Items)
	order := &domain.Order{
		CustomerID: customer.ID,
		Items:      items,
		Price:      cart.Price,
		CreatedAt:  time.Now(),
	}

	persisted, err := ds.store.CreateOrder(order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	customer.Orders = append(customer.Orders, persisted)

	customer.Balance = customer.Balance.Sub(persisted.Price)

	cart.Items = cart.Items[:0]
	cart.Price = decimal.Zero

	ds.lg.Info("order_created", map[string]any{
		"order_id":    *persisted.ID,
		"customer_id": customer.ID,
		"total":       domain.PlainString(persisted.Price),
	})
	return persisted, nil
}
