package store

import (
	"fmt"
	"path/filepath"

	"food-delivery/internal/domain"
)

const (
	customersFile = "customers.csv"
	foodsFile     = "foods.csv"
	ordersFile    = "orders.csv"
)

// DataStoreInterface is the authoritative in-memory view of customers,
// foods and orders for one run, backed by flat data files.
type DataStoreInterface interface {
	Init() error
	Customers() []*domain.Customer
	Foods() []domain.Food
	Orders() []*domain.Order
	CreateOrder(order *domain.Order) (*domain.Order, error)
	WriteOrders() error
}

// FileDataStore loads customers and foods from a folder of delimited text
// files and appends every created order to the order log in that folder.
type FileDataStore struct {
	folder string

	customerReader *CustomerReader
	foodReader     *FoodReader
	orderWriter    *OrderWriter

	customers []*domain.Customer
	foods     []domain.Food
	orders    []*domain.Order
}

func NewFileDataStore(folder string) *FileDataStore {
	return &FileDataStore{
		folder:         folder,
		customerReader: NewCustomerReader(),
		foodReader:     NewFoodReader(),
		orderWriter:    NewOrderWriter(),
	}
}

// Init loads the customer and food files. The order list always starts
// empty: each run is a fresh order log, historical file contents are not
// hydrated back.
func (s *FileDataStore) Init() error {
	customers, err := s.customerReader.Read(s.path(customersFile))
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	foods, err := s.foodReader.Read(s.path(foodsFile))
	if err != nil {
		return fmt.Errorf("failed to load foods: %w", err)
	}
	s.customers = customers
	s.foods = foods
	s.orders = []*domain.Order{}
	return nil
}

func (s *FileDataStore) Customers() []*domain.Customer { return s.customers }

func (s *FileDataStore) Foods() []domain.Food { return s.foods }

func (s *FileDataStore) Orders() []*domain.Order { return s.orders }

// CreateOrder assigns the next run-scoped id (0, 1, 2, ... in call order),
// links the order to its customer when one matches, keeps it in the run
// list and durably appends its lines to the order log before returning.
// An order referencing an unknown customer id is stored unlinked; that is
// deliberate, not an error.
func (s *FileDataStore) CreateOrder(order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: order is nil", domain.ErrInvalidArgument)
	}

	id := int64(len(s.orders))
	order.ID = &id

	for _, c := range s.customers {
		if c.ID == order.CustomerID {
			c.Orders = append(c.Orders, order)
			break
		}
	}

	s.orders = append(s.orders, order)

	if err := s.orderWriter.AppendOrder(order, s.path(ordersFile)); err != nil {
		return nil, err
	}
	return order, nil
}

// WriteOrders rewrites the order log from the in-memory order list. Used
// as an end-of-session flush, distinct from the per-order append.
func (s *FileDataStore) WriteOrders() error {
	return s.orderWriter.WriteOrders(s.orders, s.path(ordersFile))
}

func (s *FileDataStore) path(name string) string {
	return filepath.Join(s.folder, name)
}
