package store

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"food-delivery/internal/domain"
)

// CustomerReader parses the customers file. Field order is positional:
// userName, password, id, displayName, balance.
type CustomerReader struct{}

func NewCustomerReader() *CustomerReader { return &CustomerReader{} }

func (r *CustomerReader) Read(path string) ([]*domain.Customer, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(lines))
	for i, line := range lines {
		c, err := buildCustomer(line)
		if err != nil {
			return nil, &domain.ParseError{Path: path, Line: i + 1, Err: err}
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func buildCustomer(line string) (*domain.Customer, error) {
	fields := splitLineByComma(line)
	if len(fields) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	id, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id %q: %w", fields[2], err)
	}
	balance, err := decimal.NewFromString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", fields[4], err)
	}
	return &domain.Customer{
		UserName: fields[0],
		Password: fields[1],
		ID:       id,
		Name:     fields[3],
		Balance:  balance,
		Cart:     domain.NewEmptyCart(),
	}, nil
}
