package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"food-delivery/internal/domain"
)

// FoodReader parses the foods file. Field order is positional:
// name, calorie, description, price. The description may carry a raw
// double-quoted span with embedded commas; it is kept as-is.
type FoodReader struct{}

func NewFoodReader() *FoodReader { return &FoodReader{} }

func (r *FoodReader) Read(path string) ([]domain.Food, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	foods := make([]domain.Food, 0, len(lines))
	for i, line := range lines {
		f, err := buildFood(line)
		if err != nil {
			return nil, &domain.ParseError{Path: path, Line: i + 1, Err: err}
		}
		foods = append(foods, f)
	}
	return foods, nil
}

func buildFood(line string) (domain.Food, error) {
	fields := splitLineByComma(line)
	if len(fields) != 4 {
		return domain.Food{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	calorie, err := decimal.NewFromString(fields[1])
	if err != nil {
		return domain.Food{}, fmt.Errorf("invalid calorie %q: %w", fields[1], err)
	}
	price, err := decimal.NewFromString(fields[3])
	if err != nil {
		return domain.Food{}, fmt.Errorf("invalid price %q: %w", fields[3], err)
	}
	return domain.Food{
		Name:        fields[0],
		Calorie:     calorie,
		Description: fields[2],
		Price:       price,
	}, nil
}
