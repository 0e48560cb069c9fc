package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"food-delivery/internal/domain"
)

const orderTimestampLayout = "02/01/2006 15:04"

// OrderWriter serializes orders to the delimited order log. Every order
// item becomes one line:
//
//	orderId,customerId,foodName,pieces,itemLinePrice,dd/MM/yyyy HH:mm,orderTotalPrice
//
// Decimal fields are written in plain notation with their stored scale, so
// a price parsed as "8.50" is written back as "8.50".
type OrderWriter struct{}

func NewOrderWriter() *OrderWriter { return &OrderWriter{} }

// WriteOrders overwrites the target file with the full order list. Orders
// with no items contribute no lines; if every order is empty the file ends
// up zero bytes long.
func (w *OrderWriter) WriteOrders(orders []*domain.Order, path string) error {
	blocks := make([]string, 0, len(orders))
	for _, o := range orders {
		blocks = append(blocks, formatOrder(o))
	}
	if err := os.WriteFile(path, []byte(strings.Join(blocks, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write order file %s: %w", path, err)
	}
	return nil
}

// AppendOrder durably adds one order's item lines to the end of the file.
// When the file already has content a single separator is written first so
// the new lines start fresh; the appended block itself carries no trailing
// separator.
func (w *OrderWriter) AppendOrder(order *domain.Order, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open order file %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat order file %s: %w", path, err)
	}
	block := formatOrder(order)
	if st.Size() > 0 {
		block = "\n" + block
	}
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to order file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close order file %s: %w", path, err)
	}
	return nil
}

func formatOrder(order *domain.Order) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, formatOrderItem(order, item))
	}
	return strings.Join(lines, "\n")
}

func formatOrderItem(order *domain.Order, item domain.OrderItem) string {
	var id int64
	if order.ID != nil {
		id = *order.ID
	}
	return strings.Join([]string{
		strconv.FormatInt(id, 10),
		strconv.FormatInt(order.CustomerID, 10),
		item.Food.Name,
		strconv.Itoa(item.Pieces),
		domain.PlainString(item.Price),
		order.CreatedAt.Format(orderTimestampLayout),
		domain.PlainString(order.Price),
	}, ",")
}
