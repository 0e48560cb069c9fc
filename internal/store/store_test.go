package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery/internal/domain"
)

func newTestStore(t *testing.T) (*FileDataStore, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.csv"),
		[]byte("john_doe,password123,1,John Doe,100.50\njane_smith,secret456,2,Jane Smith,250.75\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foods.csv"),
		[]byte("Pizza,300,Delicious pizza,12.99\nBurger,450,Tasty burger,8.50\n"), 0o644))

	st := NewFileDataStore(dir)
	require.NoError(t, st.Init())
	return st, dir
}

func pizzaOrder(st *FileDataStore, customerID int64) *domain.Order {
	pizza := st.Foods()[0]
	return &domain.Order{
		CustomerID: customerID,
		Items:      []domain.OrderItem{{Food: pizza, Pieces: 1, Price: pizza.Price}},
		Price:      pizza.Price,
		CreatedAt:  time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
	}
}

func TestFileDataStoreInit(t *testing.T) {
	st, _ := newTestStore(t)

	require.Len(t, st.Customers(), 2)
	assert.Equal(t, "John Doe", st.Customers()[0].Name)
	assert.Equal(t, "Jane Smith", st.Customers()[1].Name)

	require.Len(t, st.Foods(), 2)
	assert.Equal(t, "Pizza", st.Foods()[0].Name)
	assert.Equal(t, "Burger", st.Foods()[1].Name)

	assert.Empty(t, st.Orders())
}

func TestFileDataStoreInitIgnoresExistingOrderLog(t *testing.T) {
	st, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"),
		[]byte("0,1,Pizza,1,12.99,01/01/2025 10:00,12.99"), 0o644))

	require.NoError(t, st.Init())
	assert.Empty(t, st.Orders())
}

func TestFileDataStoreInitFailsOnBadData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.csv"),
		[]byte("john_doe,password123,NaN,John Doe,100.50"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foods.csv"), nil, 0o644))

	err := NewFileDataStore(dir).Init()
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFileDataStoreCreateOrder(t *testing.T) {
	t.Run("assigns dense run-scoped ids in call order", func(t *testing.T) {
		st, _ := newTestStore(t)

		first, err := st.CreateOrder(pizzaOrder(st, 1))
		require.NoError(t, err)
		second, err := st.CreateOrder(pizzaOrder(st, 2))
		require.NoError(t, err)

		require.NotNil(t, first.ID)
		require.NotNil(t, second.ID)
		assert.Equal(t, int64(0), *first.ID)
		assert.Equal(t, int64(1), *second.ID)
		assert.Len(t, st.Orders(), 2)
	})

	t.Run("links the order to its customer", func(t *testing.T) {
		st, _ := newTestStore(t)

		order, err := st.CreateOrder(pizzaOrder(st, 1))
		require.NoError(t, err)

		john := st.Customers()[0]
		require.Len(t, john.Orders, 1)
		assert.Same(t, order, john.Orders[0])
		assert.Empty(t, st.Customers()[1].Orders)
	})

	t.Run("order for an unknown customer is stored but not linked", func(t *testing.T) {
		st, _ := newTestStore(t)

		order, err := st.CreateOrder(pizzaOrder(st, 999))
		require.NoError(t, err)
		require.NotNil(t, order.ID)
		assert.Equal(t, int64(0), *order.ID)
		assert.Len(t, st.Orders(), 1)
		for _, c := range st.Customers() {
			assert.Empty(t, c.Orders)
		}
	})

	t.Run("nil order is rejected", func(t *testing.T) {
		st, _ := newTestStore(t)
		_, err := st.CreateOrder(nil)
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("appends to the order log before returning", func(t *testing.T) {
		st, dir := newTestStore(t)

		_, err := st.CreateOrder(pizzaOrder(st, 1))
		require.NoError(t, err)
		_, err = st.CreateOrder(pizzaOrder(st, 2))
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "orders.csv"))
		require.NoError(t, err)
		assert.Equal(t,
			"0,1,Pizza,1,12.99,15/01/2025 14:30,12.99\n"+
				"1,2,Pizza,1,12.99,15/01/2025 14:30,12.99",
			string(content))
	})
}

func TestFileDataStoreWriteOrders(t *testing.T) {
	st, dir := newTestStore(t)

	_, err := st.CreateOrder(pizzaOrder(st, 1))
	require.NoError(t, err)
	require.NoError(t, st.WriteOrders())

	content, err := os.ReadFile(filepath.Join(dir, "orders.csv"))
	require.NoError(t, err)
	assert.Equal(t, "0,1,Pizza,1,12.99,15/01/2025 14:30,12.99", string(content))
}

func TestFileDataStoreWriteOrdersEmptyRun(t *testing.T) {
	st, dir := newTestStore(t)

	require.NoError(t, st.WriteOrders())

	content, err := os.ReadFile(filepath.Join(dir, "orders.csv"))
	require.NoError(t, err)
	assert.Empty(t, content)
}
