package statemachine

import (
	"errors"

	"resto-pos-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.TransactionStatus
	To    models.TransactionStatus
	Actor string // "cashier", "kitchen", "system"
}

// validTransitions is the authoritative state machine definition.
// Settlement (pending_payment → paid) is the only transition any endpoint
// drives today; cancellation is declared for the cashier but not routed, and
// the kitchen chain (to_cook → cooking → completed) is reserved in the
// status enum without transitions until the kitchen flow exists.
var validTransitions = []Transition{
	// Cashier settles the bill
	{From: models.StatusPendingPayment, To: models.StatusPaid, Actor: "cashier"},
	// Cashier voids an unpaid bill
	{From: models.StatusPendingPayment, To: models.StatusCancelled, Actor: "cashier"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.TransactionStatus
	To    models.TransactionStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.TransactionStatus) []models.TransactionStatus {
	var nexts []models.TransactionStatus
	seen := map[models.TransactionStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.TransactionStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.TransactionStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
