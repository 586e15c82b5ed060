package models

import "time"

// TransactionStatus represents all possible states of an order's bill
type TransactionStatus string

const (
	StatusPendingPayment TransactionStatus = "pending_payment"
	StatusPaid           TransactionStatus = "paid"
	StatusToCook         TransactionStatus = "to_cook"
	StatusCooking        TransactionStatus = "cooking"
	StatusCompleted      TransactionStatus = "completed"
	StatusCancelled      TransactionStatus = "cancelled"
)

// Transaction is the order aggregate root: one bill for a table.
// TotalAmount is fixed at creation from the line subtotals; later catalog
// price edits never touch it. AmountPaid/ChangeAmount/PaidAt are set exactly
// once by settlement.
type Transaction struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	TableID         uint              `json:"table_id" gorm:"not null"`
	Table           Table             `json:"table,omitempty" gorm:"foreignKey:TableID"`
	UserID          *uint             `json:"user_id"`
	User            *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CashierID       *uint             `json:"cashier_id"`
	Cashier         *User             `json:"cashier,omitempty" gorm:"foreignKey:CashierID"`
	Status          TransactionStatus `json:"status" gorm:"not null;default:'pending_payment'"`
	TotalAmount     int               `json:"total_amount" gorm:"not null"`
	PaymentMethod   *string           `json:"payment_method"`
	AmountPaid      *int              `json:"amount_paid"`
	ChangeAmount    *int              `json:"change_amount"`
	PaidAt          *time.Time        `json:"paid_at"`
	TransactionDate time.Time         `json:"transaction_date"`
	Lines           []TransactionLine `json:"lines,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TransactionLine snapshots one cart line. UnitPrice is the catalog price at
// order time, never the live one; the row is immutable after creation.
type TransactionLine struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	TransactionID uint     `json:"transaction_id" gorm:"not null"`
	MenuID        uint     `json:"menu_id" gorm:"not null"`
	Menu          MenuItem `json:"menu,omitempty" gorm:"foreignKey:MenuID;constraint:OnDelete:RESTRICT"`
	Quantity      int      `json:"quantity" gorm:"not null"`
	UnitPrice     int      `json:"unit_price" gorm:"not null"`
	Subtotal      int      `json:"subtotal" gorm:"not null"`
}
