package einvoice

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"gstdesk-api/internal/client/irp"
	"gstdesk-api/internal/db"
	"gstdesk-api/internal/logger"
	"gstdesk-api/internal/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*Service, *mocks.MockQuerier, *mocks.MockIRPClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	client := mocks.NewMockIRPClient(ctrl)
	return NewService(queries, client), queries, client
}

func TestGenerateIRNNotConfigured(t *testing.T) {
	service, _, client := newTestService(t)
	client.EXPECT().Configured().Return(false)

	_, err := service.GenerateIRN(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateIRNNotFound(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	_, err := service.GenerateIRN(context.Background(), invoiceID)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestGenerateIRNAlreadyIssued(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	invoice.Irn = pgtype.Text{String: "existing-irn", Valid: true}
	invoice.IrpStatus = "success"

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	// No item load, no claim, no gateway call, no mutation

	_, err := service.GenerateIRN(context.Background(), invoiceID)

	var issued *AlreadyIssuedError
	require.ErrorAs(t, err, &issued)
	assert.Equal(t, "existing-irn", issued.IRN)
}

func TestGenerateIRNNoLineItems(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	queries.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(nil, nil)

	_, err := service.GenerateIRN(context.Background(), invoiceID)
	assert.ErrorIs(t, err, ErrNoLineItems)
}

func TestGenerateIRNClaimConflict(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	queries.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{testItem(t, "8471")}, nil)
	queries.EXPECT().ClaimInvoiceForSubmission(gomock.Any(), invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	_, err := service.GenerateIRN(context.Background(), invoiceID)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestGenerateIRNSuccess(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	claimed := invoice
	claimed.IrpStatus = "submitted"

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	queries.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{testItem(t, "998314")}, nil)
	queries.EXPECT().ClaimInvoiceForSubmission(gomock.Any(), invoiceID).Return(claimed, nil)

	client.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *irp.InvoicePayload) (*irp.GenerateResponse, error) {
			assert.Equal(t, "1.1", payload.Version)
			assert.Equal(t, "INV/1", payload.DocDtls.No)
			return &irp.GenerateResponse{
				Irn:           "irn-123",
				AckNo:         json.Number("112010000000123"),
				AckDt:         "2026-03-10 14:22:31",
				SignedInvoice: "https://irp.example/signed.json",
				SignedQRCode:  "https://irp.example/qr.png",
				Status:        "ACT",
			}, nil
		})

	queries.EXPECT().MarkInvoiceIrnGenerated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.MarkInvoiceIrnGeneratedParams) (db.Invoice, error) {
			assert.Equal(t, invoiceID, arg.ID)
			assert.Equal(t, "irn-123", arg.Irn.String)
			assert.Equal(t, "112010000000123", arg.AckNo.String)
			assert.True(t, arg.AckDate.Valid)
			assert.Equal(t, 2026, arg.AckDate.Time.Year())
			assert.Equal(t, "https://irp.example/signed.json", arg.SignedJsonUrl.String)

			done := claimed
			done.IrpStatus = "success"
			done.Irn = arg.Irn
			return done, nil
		})

	result, err := service.GenerateIRN(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "success", result.IrpStatus)
	assert.Equal(t, "irn-123", result.Irn.String)
}

func TestGenerateIRNRejectionPersistsFailure(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	claimed := invoice
	claimed.IrpStatus = "submitted"

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	queries.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{testItem(t, "8471")}, nil)
	queries.EXPECT().ClaimInvoiceForSubmission(gomock.Any(), invoiceID).Return(claimed, nil)

	client.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, &irp.RejectedError{
		Message: "Duplicate IRN",
		Code:    "2150",
	})

	queries.EXPECT().MarkInvoiceIrpFailed(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.MarkInvoiceIrpFailedParams) (db.Invoice, error) {
			assert.Equal(t, invoiceID, arg.ID)
			assert.Contains(t, arg.IrpErrorMessage.String, "Duplicate IRN")
			assert.Contains(t, arg.IrpErrorMessage.String, "2150")
			return claimed, nil
		})

	_, err := service.GenerateIRN(context.Background(), invoiceID)

	var rejected *irp.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "2150", rejected.Code)
}

func TestGenerateIRNMappingFailureAfterClaim(t *testing.T) {
	service, queries, client := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	invoice.BuyerAddress = []byte(`not-json`)
	claimed := invoice
	claimed.IrpStatus = "submitted"

	client.EXPECT().Configured().Return(true)
	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	queries.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{testItem(t, "8471")}, nil)
	queries.EXPECT().ClaimInvoiceForSubmission(gomock.Any(), invoiceID).Return(claimed, nil)
	queries.EXPECT().MarkInvoiceIrpFailed(gomock.Any(), gomock.Any()).Return(claimed, nil)

	_, err := service.GenerateIRN(context.Background(), invoiceID)

	var mapErr *MappingError
	assert.ErrorAs(t, err, &mapErr)
}

func TestRequestSubmission(t *testing.T) {
	service, queries, _ := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	queued := invoice
	queued.IrpStatus = "queued"

	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	queries.EXPECT().MarkInvoiceQueued(gomock.Any(), invoiceID).Return(queued, nil)

	result, err := service.RequestSubmission(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "queued", result.IrpStatus)
}

func TestRequestSubmissionNotFound(t *testing.T) {
	service, queries, _ := newTestService(t)
	invoiceID := uuid.New()

	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	_, err := service.RequestSubmission(context.Background(), invoiceID)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestRequestSubmissionAlreadyIssued(t *testing.T) {
	service, queries, _ := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	invoice.Irn = pgtype.Text{String: "irn-123", Valid: true}
	invoice.IrpStatus = "success"

	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)

	_, err := service.RequestSubmission(context.Background(), invoiceID)

	var issued *AlreadyIssuedError
	assert.ErrorAs(t, err, &issued)
}

func TestRequestSubmissionWhileInFlight(t *testing.T) {
	service, queries, _ := newTestService(t)
	invoiceID := uuid.New()

	invoice := testInvoice(t)
	invoice.ID = invoiceID
	invoice.IrpStatus = "submitted"

	queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)

	_, err := service.RequestSubmission(context.Background(), invoiceID)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestLookupNotConfigured(t *testing.T) {
	service, _, client := newTestService(t)
	client.EXPECT().Configured().Return(false)

	_, err := service.Lookup(context.Background(), "irn-123")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLookupPassThrough(t *testing.T) {
	service, _, client := newTestService(t)

	client.EXPECT().Configured().Return(true)
	client.EXPECT().GetByIRN(gomock.Any(), "irn-123").Return(&irp.GenerateResponse{Irn: "irn-123", Status: "ACT"}, nil)

	result, err := service.Lookup(context.Background(), "irn-123")
	require.NoError(t, err)
	assert.Equal(t, "ACT", result.Status)
}

func TestCancelUpdatesLocalInvoice(t *testing.T) {
	service, queries, client := newTestService(t)

	invoice := testInvoice(t)
	invoice.Irn = pgtype.Text{String: "irn-123", Valid: true}
	invoice.IrpStatus = "success"

	client.EXPECT().Configured().Return(true)
	client.EXPECT().Cancel(gomock.Any(), "irn-123", "1", "Data entry mistake").Return(&irp.CancelResponse{Irn: "irn-123"}, nil)
	queries.EXPECT().GetInvoiceByIrn(gomock.Any(), pgtype.Text{String: "irn-123", Valid: true}).Return(invoice, nil)
	queries.EXPECT().MarkInvoiceCancelled(gomock.Any(), pgtype.Text{String: "irn-123", Valid: true}).Return(invoice, nil)

	result, err := service.Cancel(context.Background(), "irn-123", "1", "Data entry mistake")
	require.NoError(t, err)
	assert.Equal(t, "irn-123", result.Irn)
}

func TestCancelWithoutLocalInvoice(t *testing.T) {
	service, queries, client := newTestService(t)

	client.EXPECT().Configured().Return(true)
	client.EXPECT().Cancel(gomock.Any(), "irn-external", "1", "remark").Return(&irp.CancelResponse{Irn: "irn-external"}, nil)
	queries.EXPECT().GetInvoiceByIrn(gomock.Any(), gomock.Any()).Return(db.Invoice{}, pgx.ErrNoRows)

	result, err := service.Cancel(context.Background(), "irn-external", "1", "remark")
	require.NoError(t, err)
	assert.Equal(t, "irn-external", result.Irn)
}

func TestCancelRemoteFailureLeavesLocalState(t *testing.T) {
	service, _, client := newTestService(t)

	client.EXPECT().Configured().Return(true)
	client.EXPECT().Cancel(gomock.Any(), "irn-123", "1", "remark").Return(nil, &irp.RejectedError{Message: "IRN not active"})

	_, err := service.Cancel(context.Background(), "irn-123", "1", "remark")

	var rejected *irp.RejectedError
	assert.ErrorAs(t, err, &rejected)
}

func TestParseAckDateFallsBackToNow(t *testing.T) {
	service, _, _ := newTestService(t)

	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	parsed := service.parseAckDate("2026-03-10 14:22:31")
	assert.Equal(t, 14, parsed.Hour())

	fallback := service.parseAckDate("not a date")
	assert.Equal(t, fixed, fallback)
}
