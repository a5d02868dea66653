package einvoice

import "fmt"

// Status is the IRN lifecycle state of an invoice. The zero value is not
// valid; invoices are created as StatusPending.
type Status string

const (
	// StatusPending means the invoice exists but no registration was requested
	StatusPending Status = "pending"
	// StatusQueued means registration was requested and a worker will pick it up
	StatusQueued Status = "queued"
	// StatusSubmitted means a registration call is in flight
	StatusSubmitted Status = "submitted"
	// StatusSuccess means the gateway issued an IRN
	StatusSuccess Status = "success"
	// StatusFailed means the last registration attempt failed; retriable
	StatusFailed Status = "failed"
	// StatusCancelled means the issued IRN was revoked at the gateway
	StatusCancelled Status = "cancelled"
)

// transitions is the set of legal state changes. An issued IRN survives
// cancellation; nothing moves out of cancelled.
var transitions = map[Status][]Status{
	StatusPending:   {StatusQueued, StatusSubmitted},
	StatusQueued:    {StatusSubmitted},
	StatusSubmitted: {StatusSuccess, StatusFailed},
	StatusFailed:    {StatusQueued, StatusSubmitted},
	StatusSuccess:   {StatusCancelled},
	StatusCancelled: {},
}

// Valid reports whether s is a known lifecycle state
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from one state to another is legal
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a descriptive error for an illegal state change
func CheckTransition(from, to Status) error {
	if !from.Valid() {
		return fmt.Errorf("unknown invoice status %q", from)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("illegal status transition %s -> %s", from, to)
	}
	return nil
}
