package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"resto-pos-api/middleware"
	"resto-pos-api/orders"

	"github.com/gin-gonic/gin"
)

// CreateTransaction opens an order for a table: validates the cart, reserves
// stock and persists the header with its lines in one atomic unit of work
func CreateTransaction(c *gin.Context) {
	actorID := middleware.GetUserID(c)

	var req orders.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := orders.Place(c.Request.Context(), &actorID, req)
	if err != nil {
		var stockErr *orders.InsufficientStockError
		var menuErr *orders.MenuItemNotFoundError
		switch {
		case errors.As(err, &stockErr),
			errors.As(err, &menuErr),
			errors.Is(err, orders.ErrTableNotFound),
			errors.Is(err, orders.ErrEmptyCart):
			respondError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, orders.ErrBusy):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create transaction")
		}
		return
	}

	middleware.RecordTransactionCreated()
	respondSuccess(c, http.StatusCreated, "Transaction created", txn)
}

// GetTransaction returns one transaction with lines, menu items and table
func GetTransaction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	txn, getErr := orders.Get(c.Request.Context(), uint(id))
	if getErr != nil {
		if errors.Is(getErr, orders.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch transaction")
		return
	}

	respondSuccess(c, http.StatusOK, "success get transaction", txn)
}

// ListTransactions returns transactions for the cashier console, newest
// first, optionally filtered by ?status=
func ListTransactions(c *gin.Context) {
	txns, err := orders.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	// Dashboard summary: counts per status
	summary := map[string]int{}
	for _, t := range txns {
		summary[string(t.Status)]++
	}

	respondSuccess(c, http.StatusOK, "success get transactions", gin.H{
		"summary":      summary,
		"count":        len(txns),
		"transactions": txns,
	})
}

type SettleRequest struct {
	AmountPaid int `json:"amount_paid" binding:"required,min=1"`
}

// SettleTransaction takes the tendered cash, moves the order to paid and
// computes the change. Settling twice returns 400 the second time.
func SettleTransaction(c *gin.Context) {
	actorID := middleware.GetUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	txn, settleErr := orders.Settle(c.Request.Context(), &actorID, uint(id), req.AmountPaid)
	if settleErr != nil {
		var shortErr *orders.ShortPaymentError
		switch {
		case errors.Is(settleErr, orders.ErrNotFound):
			respondError(c, http.StatusNotFound, "Transaction not found")
		case errors.Is(settleErr, orders.ErrAlreadyProcessed):
			respondError(c, http.StatusBadRequest, "Transaction already processed")
		case errors.As(settleErr, &shortErr):
			respondError(c, http.StatusUnprocessableEntity, settleErr.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Failed to settle payment")
		}
		return
	}

	middleware.RecordPaymentSettled()
	respondSuccess(c, http.StatusOK, "Payment success", txn)
}
