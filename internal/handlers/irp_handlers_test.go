package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gstdesk-api/internal/client/irp"
	"gstdesk-api/internal/db"
	"gstdesk-api/internal/einvoice"
	"gstdesk-api/internal/logger"
	"gstdesk-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	os.Exit(m.Run())
}

type handlerFixture struct {
	services *CommonServices
	queries  *mocks.MockQuerier
	irp      *mocks.MockIRPClient
	router   *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	irpClient := mocks.NewMockIRPClient(ctrl)

	services := NewCommonServices(CommonServicesConfig{
		DB:       queries,
		Einvoice: einvoice.NewService(queries, irpClient),
	})

	router := gin.New()
	router.POST("/irp/generate/:invoice_id", services.GenerateIrn)
	router.GET("/irp/invoice/:irn", services.LookupIrn)
	router.POST("/irp/cancel", services.CancelIrn)
	router.GET("/irp/status", services.IrpStatus)
	router.POST("/invoices/:invoice_id/einvoice", services.SubmitInvoice)

	return &handlerFixture{
		services: services,
		queries:  queries,
		irp:      irpClient,
		router:   router,
	}
}

func pendingInvoice(id uuid.UUID) db.Invoice {
	return db.Invoice{
		ID:            id,
		TenantID:      uuid.New(),
		InvoiceNumber: "INV/42",
		InvoiceDate:   pgtype.Date{Time: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		InvoiceType:   "B2B",
		DocumentType:  "INV",
		SupplyType:    "INTER_STATE",
		IrpStatus:     "pending",
	}
}

func TestGenerateIrnNotConfigured(t *testing.T) {
	f := newHandlerFixture(t)
	f.irp.EXPECT().Configured().Return(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/generate/"+uuid.NewString(), nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGenerateIrnInvalidID(t *testing.T) {
	f := newHandlerFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/generate/not-a-uuid", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateIrnNotFound(t *testing.T) {
	f := newHandlerFixture(t)
	invoiceID := uuid.New()

	f.irp.EXPECT().Configured().Return(true)
	f.queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/generate/"+invoiceID.String(), nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateIrnAlreadyIssued(t *testing.T) {
	f := newHandlerFixture(t)
	invoiceID := uuid.New()

	invoice := pendingInvoice(invoiceID)
	invoice.Irn = pgtype.Text{String: "irn-123", Valid: true}
	invoice.IrpStatus = "success"

	f.irp.EXPECT().Configured().Return(true)
	f.queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/generate/"+invoiceID.String(), nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "irn-123")
}

func TestGenerateIrnClaimConflict(t *testing.T) {
	f := newHandlerFixture(t)
	invoiceID := uuid.New()

	invoice := pendingInvoice(invoiceID)

	f.irp.EXPECT().Configured().Return(true)
	f.queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	f.queries.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{{ID: uuid.New()}}, nil)
	f.queries.EXPECT().ClaimInvoiceForSubmission(gomock.Any(), invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/generate/"+invoiceID.String(), nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLookupIrnPassThrough(t *testing.T) {
	f := newHandlerFixture(t)

	f.irp.EXPECT().Configured().Return(true)
	f.irp.EXPECT().GetByIRN(gomock.Any(), "irn-123").Return(&irp.GenerateResponse{Irn: "irn-123", Status: "ACT"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/irp/invoice/irn-123", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp irp.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACT", resp.Status)
}

func TestLookupIrnRemoteRejection(t *testing.T) {
	f := newHandlerFixture(t)

	f.irp.EXPECT().Configured().Return(true)
	f.irp.EXPECT().GetByIRN(gomock.Any(), "bad-irn").Return(nil, &irp.RejectedError{Message: "Invalid IRN", Code: "2283"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/irp/invoice/bad-irn", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "2283")
}

func TestCancelIrn(t *testing.T) {
	f := newHandlerFixture(t)

	invoice := pendingInvoice(uuid.New())
	invoice.Irn = pgtype.Text{String: "irn-123", Valid: true}
	invoice.IrpStatus = "success"

	f.irp.EXPECT().Configured().Return(true)
	f.irp.EXPECT().Cancel(gomock.Any(), "irn-123", "1", "wrong buyer").Return(&irp.CancelResponse{Irn: "irn-123"}, nil)
	f.queries.EXPECT().GetInvoiceByIrn(gomock.Any(), gomock.Any()).Return(invoice, nil)
	f.queries.EXPECT().MarkInvoiceCancelled(gomock.Any(), gomock.Any()).Return(invoice, nil)

	body, _ := json.Marshal(CancelIrnRequest{Irn: "irn-123", Reason: "1", Remark: "wrong buyer"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelIrnMissingFields(t *testing.T) {
	f := newHandlerFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/irp/cancel", bytes.NewReader([]byte(`{"irn":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIrpStatus(t *testing.T) {
	f := newHandlerFixture(t)
	f.irp.EXPECT().Configured().Return(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/irp/status", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"configured": true}`, w.Body.String())
}

func TestSubmitInvoiceQueues(t *testing.T) {
	f := newHandlerFixture(t)
	invoiceID := uuid.New()

	invoice := pendingInvoice(invoiceID)
	queued := invoice
	queued.IrpStatus = "queued"

	f.queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	f.queries.EXPECT().MarkInvoiceQueued(gomock.Any(), invoiceID).Return(queued, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoiceID.String()+"/einvoice", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp.IrpStatus)
}

func TestSubmitInvoiceAlreadyIssued(t *testing.T) {
	f := newHandlerFixture(t)
	invoiceID := uuid.New()

	invoice := pendingInvoice(invoiceID)
	invoice.Irn = pgtype.Text{String: "irn-123", Valid: true}
	invoice.IrpStatus = "success"

	f.queries.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoiceID.String()+"/einvoice", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
