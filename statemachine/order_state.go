package statemachine

import (
	"errors"

	"restaurant-pos-api/models"
)

// sequence is the authoritative fulfillment lifecycle, in order.
// COMPLETED is terminal.
var sequence = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusCompleted,
}

// rank maps each status to its position in the sequence for O(1) checks
var rank = func() map[models.OrderStatus]int {
	m := make(map[models.OrderStatus]int, len(sequence))
	for i, s := range sequence {
		m[s] = i
	}
	return m
}()

// Sequence returns the full lifecycle for documentation endpoints.
func Sequence() []models.OrderStatus {
	return sequence
}

// IsValid reports whether s is a recognized order status.
func IsValid(s models.OrderStatus) bool {
	_, ok := rank[s]
	return ok
}

// ValidTransitionsFrom returns all states reachable from the given state.
// Transitions only move forward through the sequence; skipping steps is
// allowed so a cashier can close an order directly.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	from, ok := rank[status]
	if !ok {
		return nil
	}
	var nexts []models.OrderStatus
	for _, s := range sequence[from+1:] {
		nexts = append(nexts, s)
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
func CanTransition(from, to models.OrderStatus) error {
	fromRank, ok := rank[from]
	if !ok {
		return errors.New("unknown current status '" + string(from) + "'")
	}
	toRank, ok := rank[to]
	if !ok {
		return errors.New("unknown target status '" + string(to) + "'")
	}
	if toRank > fromRank {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
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
