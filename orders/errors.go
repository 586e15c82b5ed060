package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart rejects a creation request with zero lines
	ErrEmptyCart = errors.New("cart must contain at least one item")
	// ErrTableNotFound rejects a creation request for an unknown table
	ErrTableNotFound = errors.New("table not found")
	// ErrNotFound means no transaction exists for the requested id
	ErrNotFound = errors.New("transaction not found")
	// ErrAlreadyProcessed rejects settlement of a non-pending transaction
	ErrAlreadyProcessed = errors.New("transaction already processed")
	// ErrBusy means the menu rows are held by a concurrent order-creation
	// transaction past the lock-wait timeout; the client may retry
	ErrBusy = errors.New("menu items are locked by another order, try again")
)

// MenuItemNotFoundError identifies which cart line referenced a missing item
type MenuItemNotFoundError struct {
	MenuID uint
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.MenuID)
}

// InsufficientStockError names the item that could not cover the requested
// quantity so the client can render an actionable message
type InsufficientStockError struct {
	MenuID    uint
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for menu %q: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}

// ShortPaymentError rejects settlement below the bill total
type ShortPaymentError struct {
	AmountPaid  int
	TotalAmount int
}

func (e *ShortPaymentError) Error() string {
	return fmt.Sprintf("amount paid %d is less than total amount %d", e.AmountPaid, e.TotalAmount)
}
