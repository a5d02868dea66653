package einvoice

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotConfigured means the gateway credentials are missing; no remote
	// call was attempted
	ErrNotConfigured = errors.New("e-invoicing is not configured for this deployment")

	// ErrInvoiceNotFound means the invoice id does not exist locally
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrNoLineItems means the invoice has no line items and cannot be
	// registered
	ErrNoLineItems = errors.New("invoice has no line items")

	// ErrSubmissionInFlight means another submission already claimed the
	// invoice, or its current status does not allow submission
	ErrSubmissionInFlight = errors.New("invoice submission already in progress")
)

// AlreadyIssuedError means the invoice already carries an IRN; issuing again
// would be a duplicate registration
type AlreadyIssuedError struct {
	IRN string
}

func (e *AlreadyIssuedError) Error() string {
	return fmt.Sprintf("invoice already has IRN %s", e.IRN)
}

// MappingError means the invoice record cannot be expressed in the gateway
// wire format
type MappingError struct {
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("invoice cannot be mapped to e-invoice format: %s", e.Reason)
}
