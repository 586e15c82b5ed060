package orders

import (
	"context"
	"errors"
	"sort"
	"time"

	"resto-pos-api/config"
	"resto-pos-api/models"
	"resto-pos-api/statemachine"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLine is one requested (menu, quantity) pair in a creation request
type CartLine struct {
	MenuID uint `json:"menu_id" binding:"required"`
	Qty    int  `json:"qty" binding:"required,min=1"`
}

// PlaceRequest is the validated payload for opening a transaction
type PlaceRequest struct {
	TableID       uint       `json:"table_id" binding:"required"`
	PaymentMethod *string    `json:"payment_method" binding:"omitempty,oneof=cash ewallet"`
	Items         []CartLine `json:"items" binding:"required,min=1,dive"`
}

// Place turns a cart into a durable Transaction + TransactionLine set.
// Everything — table check, locked stock validation, header and line
// inserts, stock decrements — runs inside one database transaction, so any
// failure rolls the whole batch back. actorID is the authenticated user who
// opened the order (never read from ambient state).
func Place(ctx context.Context, actorID *uint, req PlaceRequest) (*models.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Bound the row-lock wait so a contended creation surfaces as a
	// retryable busy error instead of hanging the request.
	lockCtx, cancel := context.WithTimeout(ctx, config.LockWaitTimeout)
	defer cancel()

	// Duplicate menu ids are merged so the stock check sees the cart's
	// cumulative demand per item, not each line in isolation.
	wanted := make(map[uint]int)
	for _, line := range req.Items {
		wanted[line.MenuID] += line.Qty
	}
	ids := make([]uint, 0, len(wanted))
	for id := range wanted {
		ids = append(ids, id)
	}
	// Locks are taken in ascending id order to avoid deadlocks between
	// concurrent carts touching overlapping item sets.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var txn models.Transaction
	err := config.DB.WithContext(lockCtx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, req.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}

		menus, err := lockMenuItems(tx, ids)
		if err != nil {
			return err
		}

		for _, id := range ids {
			menu, ok := menus[id]
			if !ok {
				return &MenuItemNotFoundError{MenuID: id}
			}
			if menu.Stock < wanted[id] {
				return &InsufficientStockError{
					MenuID:    menu.ID,
					Name:      menu.Name,
					Requested: wanted[id],
					Available: menu.Stock,
				}
			}
		}

		totalAmount := 0
		lines := make([]models.TransactionLine, 0, len(req.Items))
		for _, line := range req.Items {
			menu := menus[line.MenuID]
			subtotal := menu.Price * line.Qty
			totalAmount += subtotal
			lines = append(lines, models.TransactionLine{
				MenuID:    menu.ID,
				Quantity:  line.Qty,
				UnitPrice: menu.Price, // snapshot, immune to later price edits
				Subtotal:  subtotal,
			})
		}

		txn = models.Transaction{
			TableID:         req.TableID,
			UserID:          actorID,
			Status:          models.StatusPendingPayment,
			TotalAmount:     totalAmount,
			PaymentMethod:   req.PaymentMethod,
			TransactionDate: time.Now(),
			Lines:           lines,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		for _, id := range ids {
			res := tx.Model(&models.MenuItem{}).
				Where("id = ?", id).
				UpdateColumn("stock", gorm.Expr("stock - ?", wanted[id]))
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(lockCtx.Err(), context.DeadlineExceeded) {
			return nil, ErrBusy
		}
		return nil, err
	}

	config.Log.Info("transaction created",
		zap.Uint("transaction_id", txn.ID),
		zap.Uint("table_id", txn.TableID),
		zap.Int("total_amount", txn.TotalAmount),
		zap.Int("line_count", len(txn.Lines)),
	)

	return Get(ctx, txn.ID)
}

// lockMenuItems reads the referenced catalog rows under an exclusive row
// lock, keyed by id. SQLite has no FOR UPDATE; its single-writer model
// already serializes the surrounding transaction, so the clause is only
// applied on dialects that support it.
func lockMenuItems(tx *gorm.DB, ids []uint) (map[uint]models.MenuItem, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var items []models.MenuItem
	if err := q.Where("id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID, nil
}

// Settle moves a transaction from pending_payment to paid and computes the
// change. The status precondition makes the call safe to repeat: the second
// attempt observes a non-pending status and gets ErrAlreadyProcessed, so
// amount_paid and change_amount are written exactly once.
func Settle(ctx context.Context, actorID *uint, id uint, amountPaid int) (*models.Transaction, error) {
	var txn models.Transaction
	if err := config.DB.WithContext(ctx).First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := statemachine.CanTransition(txn.Status, models.StatusPaid, "cashier"); err != nil {
		return nil, ErrAlreadyProcessed
	}
	if amountPaid < txn.TotalAmount {
		return nil, &ShortPaymentError{AmountPaid: amountPaid, TotalAmount: txn.TotalAmount}
	}

	change := amountPaid - txn.TotalAmount
	now := time.Now()
	// Guarded update: concurrent settle attempts race on the status
	// predicate and only one row update can win.
	res := config.DB.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, models.StatusPendingPayment).
		Updates(map[string]interface{}{
			"status":        models.StatusPaid,
			"amount_paid":   amountPaid,
			"change_amount": change,
			"paid_at":       now,
			"cashier_id":    actorID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyProcessed
	}

	config.Log.Info("payment settled",
		zap.Uint("transaction_id", id),
		zap.Int("amount_paid", amountPaid),
		zap.Int("change_amount", change),
	)

	return Get(ctx, id)
}

// Get returns a transaction with its lines (each joined to its menu item)
// and its table. Read-only.
func Get(ctx context.Context, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := config.DB.WithContext(ctx).
		Preload("Lines.Menu").
		Preload("Table").
		First(&txn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// List returns transactions newest first, optionally filtered by status.
// Backs the cashier console's order monitor.
func List(ctx context.Context, status string) ([]models.Transaction, error) {
	var txns []models.Transaction
	query := config.DB.WithContext(ctx).
		Preload("Lines.Menu").
		Preload("Table")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
