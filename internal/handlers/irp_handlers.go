package handlers

import (
	"net/http"

	"gstdesk-api/internal/client/irp"
	"gstdesk-api/internal/einvoice"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CancelIrnRequest represents the payload for revoking an IRN
type CancelIrnRequest struct {
	Irn    string `json:"irn" binding:"required"`
	Reason string `json:"reason" binding:"required"`
	Remark string `json:"remark" binding:"required"`
}

// sendEinvoiceError maps the e-invoicing error taxonomy onto HTTP statuses.
// Remote failures keep their message so support can read the gateway code
// straight out of the response.
func (s *CommonServices) sendEinvoiceError(c *gin.Context, err error) {
	var (
		alreadyIssued *einvoice.AlreadyIssuedError
		mapErr        *einvoice.MappingError
		authErr       *irp.AuthError
		rejected      *irp.RejectedError
		unavailable   *irp.UnavailableError
	)

	switch {
	case errors.Is(err, einvoice.ErrNotConfigured):
		sendError(c, http.StatusServiceUnavailable, err.Error(), err)
	case errors.Is(err, einvoice.ErrInvoiceNotFound):
		sendError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, einvoice.ErrNoLineItems):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, einvoice.ErrSubmissionInFlight):
		sendError(c, http.StatusConflict, err.Error(), err)
	case errors.As(err, &alreadyIssued):
		sendError(c, http.StatusBadRequest, alreadyIssued.Error(), err)
	case errors.As(err, &mapErr):
		sendError(c, http.StatusBadRequest, mapErr.Error(), err)
	case errors.As(err, &authErr), errors.As(err, &rejected), errors.As(err, &unavailable):
		sendError(c, http.StatusInternalServerError, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// GenerateIrn runs the synchronous IRN generation path for an invoice
func (s *CommonServices) GenerateIrn(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	invoice, err := s.einvoice.GenerateIRN(c.Request.Context(), invoiceID)
	if err != nil {
		s.sendEinvoiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice, nil))
}

// LookupIrn fetches the registered invoice for an IRN from the gateway
func (s *CommonServices) LookupIrn(c *gin.Context) {
	irn := c.Param("irn")
	if irn == "" {
		sendError(c, http.StatusBadRequest, "IRN is required", nil)
		return
	}

	result, err := s.einvoice.Lookup(c.Request.Context(), irn)
	if err != nil {
		s.sendEinvoiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// CancelIrn revokes an IRN at the gateway and reconciles local state
func (s *CommonServices) CancelIrn(c *gin.Context) {
	var req CancelIrnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	result, err := s.einvoice.Cancel(c.Request.Context(), req.Irn, req.Reason, req.Remark)
	if err != nil {
		s.sendEinvoiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// IrpStatus reports whether e-invoicing is configured for this deployment
func (s *CommonServices) IrpStatus(c *gin.Context) {
	sendSuccess(c, http.StatusOK, gin.H{
		"configured": s.einvoice.Configured(),
	})
}
