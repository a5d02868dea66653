package einvoice

import (
	"context"
	"time"

	"gstdesk-api/internal/client/irp"
	"gstdesk-api/internal/db"
	"gstdesk-api/internal/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ackDateLayout is the timestamp format the gateway uses in AckDt
const ackDateLayout = "2006-01-02 15:04:05"

// istZone is the gateway's local zone; AckDt carries no offset
var istZone = time.FixedZone("IST", 5*3600+30*60)

// IRPClient is the gateway surface the service depends on
type IRPClient interface {
	Configured() bool
	Generate(ctx context.Context, payload *irp.InvoicePayload) (*irp.GenerateResponse, error)
	GetByIRN(ctx context.Context, irn string) (*irp.GenerateResponse, error)
	Cancel(ctx context.Context, irn, reason, remarks string) (*irp.CancelResponse, error)
}

// Service drives the IRN lifecycle of invoices: queueing, registration,
// lookup and cancellation
type Service struct {
	queries db.Querier
	irp     IRPClient
	now     func() time.Time
}

// NewService creates the e-invoicing service
func NewService(queries db.Querier, client IRPClient) *Service {
	return &Service{
		queries: queries,
		irp:     client,
		now:     time.Now,
	}
}

// Configured reports whether the gateway credentials are present
func (s *Service) Configured() bool {
	return s.irp.Configured()
}

// RequestSubmission marks an invoice as queued for registration. It does not
// contact the gateway; a worker picks the invoice up later.
func (s *Service) RequestSubmission(ctx context.Context, invoiceID uuid.UUID) (db.Invoice, error) {
	invoice, err := s.queries.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, ErrInvoiceNotFound
		}
		return db.Invoice{}, errors.Wrap(err, "loading invoice")
	}

	if invoice.Irn.Valid && invoice.Irn.String != "" {
		return db.Invoice{}, &AlreadyIssuedError{IRN: invoice.Irn.String}
	}
	if err := CheckTransition(Status(invoice.IrpStatus), StatusQueued); err != nil {
		return db.Invoice{}, ErrSubmissionInFlight
	}

	queued, err := s.queries.MarkInvoiceQueued(ctx, invoiceID)
	if err != nil {
		return db.Invoice{}, errors.Wrap(err, "queueing invoice")
	}

	logger.Info("invoice queued for IRN generation",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("invoice_number", queued.InvoiceNumber))

	return queued, nil
}

// GenerateIRN runs the synchronous registration path: precondition checks,
// atomic claim, transform, gateway call, and outcome persistence.
//
// Precondition failures leave the invoice untouched. Once the invoice is
// claimed, every failure is recorded on the invoice as a retriable failed
// state before the error is returned.
func (s *Service) GenerateIRN(ctx context.Context, invoiceID uuid.UUID) (db.Invoice, error) {
	if !s.irp.Configured() {
		return db.Invoice{}, ErrNotConfigured
	}

	invoice, err := s.queries.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, ErrInvoiceNotFound
		}
		return db.Invoice{}, errors.Wrap(err, "loading invoice")
	}

	if invoice.Irn.Valid && invoice.Irn.String != "" {
		return db.Invoice{}, &AlreadyIssuedError{IRN: invoice.Irn.String}
	}

	items, err := s.queries.ListInvoiceItems(ctx, invoiceID)
	if err != nil {
		return db.Invoice{}, errors.Wrap(err, "loading invoice items")
	}
	if len(items) == 0 {
		return db.Invoice{}, ErrNoLineItems
	}

	// Claim the invoice with a conditional transition to submitted. A
	// concurrent submission loses the claim and never reaches the gateway,
	// so one invoice can never produce two IRNs.
	claimed, err := s.queries.ClaimInvoiceForSubmission(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, ErrSubmissionInFlight
		}
		return db.Invoice{}, errors.Wrap(err, "claiming invoice for submission")
	}

	payload, err := BuildPayload(claimed, items)
	if err != nil {
		s.markFailed(ctx, invoiceID, err)
		return db.Invoice{}, err
	}

	result, err := s.irp.Generate(ctx, payload)
	if err != nil {
		s.markFailed(ctx, invoiceID, err)
		return db.Invoice{}, err
	}

	updated, err := s.queries.MarkInvoiceIrnGenerated(ctx, db.MarkInvoiceIrnGeneratedParams{
		ID:            invoiceID,
		Irn:           pgtype.Text{String: result.Irn, Valid: true},
		AckNo:         pgtype.Text{String: result.AckNo.String(), Valid: true},
		AckDate:       pgtype.Timestamptz{Time: s.parseAckDate(result.AckDt), Valid: true},
		SignedJsonUrl: pgtype.Text{String: result.SignedInvoice, Valid: result.SignedInvoice != ""},
		QrCodeUrl:     pgtype.Text{String: result.SignedQRCode, Valid: result.SignedQRCode != ""},
	})
	if err != nil {
		// The gateway issued an IRN but we failed to record it. This is
		// the one outcome that needs operator attention, so log loudly
		// before surfacing the error.
		logger.Error("IRN issued but not persisted",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("irn", result.Irn),
			zap.Error(err))
		return db.Invoice{}, errors.Wrap(err, "persisting IRN result")
	}

	logger.Info("IRN generation completed",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("irn", result.Irn))

	return updated, nil
}

// Lookup fetches the registered invoice for an IRN from the gateway. No
// local state is touched.
func (s *Service) Lookup(ctx context.Context, irn string) (*irp.GenerateResponse, error) {
	if !s.irp.Configured() {
		return nil, ErrNotConfigured
	}
	return s.irp.GetByIRN(ctx, irn)
}

// Cancel revokes an IRN at the gateway and, when the invoice exists locally,
// moves it to cancelled. A missing local invoice is tolerated so externally
// registered IRNs can still be revoked.
func (s *Service) Cancel(ctx context.Context, irn, reason, remarks string) (*irp.CancelResponse, error) {
	if !s.irp.Configured() {
		return nil, ErrNotConfigured
	}

	result, err := s.irp.Cancel(ctx, irn, reason, remarks)
	if err != nil {
		return nil, err
	}

	irnText := pgtype.Text{String: irn, Valid: true}
	invoice, err := s.queries.GetInvoiceByIrn(ctx, irnText)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Error("IRN cancelled remotely but local lookup failed",
				zap.String("irn", irn),
				zap.Error(err))
		}
		return result, nil
	}

	if !CanTransition(Status(invoice.IrpStatus), StatusCancelled) {
		logger.Warn("IRN cancelled remotely but local status does not allow it",
			zap.String("irn", irn),
			zap.String("status", invoice.IrpStatus))
		return result, nil
	}

	if _, err := s.queries.MarkInvoiceCancelled(ctx, irnText); err != nil {
		logger.Error("IRN cancelled remotely but local update failed",
			zap.String("irn", irn),
			zap.Error(err))
	}

	return result, nil
}

// markFailed records a registration failure on the invoice. The write itself
// failing is only logged; the original error still reaches the caller.
func (s *Service) markFailed(ctx context.Context, invoiceID uuid.UUID, cause error) {
	_, err := s.queries.MarkInvoiceIrpFailed(ctx, db.MarkInvoiceIrpFailedParams{
		ID:              invoiceID,
		IrpErrorMessage: pgtype.Text{String: cause.Error(), Valid: true},
	})
	if err != nil {
		logger.Error("failed to record IRN failure on invoice",
			zap.String("invoice_id", invoiceID.String()),
			zap.NamedError("cause", cause),
			zap.Error(err))
	}
}

// parseAckDate interprets the gateway acknowledgement timestamp. The wire
// value carries no offset; the gateway operates in IST. An unparseable value
// falls back to the current time rather than failing a successful
// registration.
func (s *Service) parseAckDate(ackDt string) time.Time {
	t, err := time.ParseInLocation(ackDateLayout, ackDt, istZone)
	if err != nil {
		logger.Warn("unparseable acknowledgement date from gateway",
			zap.String("ack_dt", ackDt))
		return s.now()
	}
	return t
}
