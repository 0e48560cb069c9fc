package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is. Callers wrap them with
// additional context via fmt.Errorf and %w.
var (
	// ErrInvalidArgument covers missing required inputs, negative piece
	// counts and removing a cart entry that does not exist.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthentication is returned for absent or non-matching credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrEmptyCart is returned when an order is attempted on a cart with
	// no items.
	ErrEmptyCart = errors.New("cannot create order from empty cart")
)

// ParseError reports a malformed record while loading a data file. The
// whole load aborts on the first one; partial catalogs are not tolerated.
type ParseError struct {
	Path string
	Line int // 1-based line number within the file
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LowBalanceError reports a cart mutation that would push the cart total
// over the customer's balance. The cart is left untouched.
type LowBalanceError struct {
	Food   string
	Pieces int
}

func (e *LowBalanceError) Error() string {
	return fmt.Sprintf("with current cart content, adding %d x %s would exceed available balance", e.Pieces, e.Food)
}
