package statemachine

import (
	"testing"

	"resto-pos-api/models"
)

func TestCashierCanSettlePendingPayment(t *testing.T) {
	if err := CanTransition(models.StatusPendingPayment, models.StatusPaid, "cashier"); err != nil {
		t.Errorf("pending_payment -> paid by cashier rejected: %v", err)
	}
}

func TestCashierCanCancelPendingPayment(t *testing.T) {
	if err := CanTransition(models.StatusPendingPayment, models.StatusCancelled, "cashier"); err != nil {
		t.Errorf("pending_payment -> cancelled by cashier rejected: %v", err)
	}
}

func TestPaidIsTerminalForCashier(t *testing.T) {
	targets := []models.TransactionStatus{
		models.StatusPendingPayment,
		models.StatusPaid,
		models.StatusToCook,
		models.StatusCooking,
		models.StatusCompleted,
		models.StatusCancelled,
	}
	for _, to := range targets {
		if err := CanTransition(models.StatusPaid, to, "cashier"); err == nil {
			t.Errorf("paid -> %s unexpectedly allowed", to)
		}
	}
}

func TestUnknownActorRejected(t *testing.T) {
	if err := CanTransition(models.StatusPendingPayment, models.StatusPaid, "kitchen"); err == nil {
		t.Error("kitchen actor allowed to settle")
	}
}

func TestValidTransitionsFromPending(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPendingPayment)
	want := map[models.TransactionStatus]bool{
		models.StatusPaid:      true,
		models.StatusCancelled: true,
	}
	if len(nexts) != len(want) {
		t.Fatalf("nexts = %v, want paid and cancelled", nexts)
	}
	for _, s := range nexts {
		if !want[s] {
			t.Errorf("unexpected next state %s", s)
		}
	}
}

func TestReservedKitchenStatesHaveNoTransitions(t *testing.T) {
	for _, from := range []models.TransactionStatus{
		models.StatusToCook, models.StatusCooking, models.StatusCompleted, models.StatusCancelled,
	} {
		if nexts := ValidTransitionsFrom(from); len(nexts) != 0 {
			t.Errorf("ValidTransitionsFrom(%s) = %v, want none", from, nexts)
		}
	}
}
