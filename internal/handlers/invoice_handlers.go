package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gstdesk-api/internal/db"
	"gstdesk-api/internal/einvoice"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddressRequest mirrors the structured address stored on invoices
type AddressRequest struct {
	Building  string `json:"building" binding:"required"`
	Street    string `json:"street" binding:"required"`
	Locality  string `json:"locality"`
	City      string `json:"city" binding:"required"`
	Pincode   string `json:"pincode" binding:"required,len=6,numeric"`
	StateCode string `json:"state_code" binding:"required,len=2"`
}

// InvoiceItemRequest represents one line of a new invoice. Amounts are
// decimal strings to avoid float rounding on the wire.
type InvoiceItemRequest struct {
	Description  string `json:"description" binding:"required"`
	HsnCode      string `json:"hsn_code" binding:"required,min=4,max=8,numeric"`
	Quantity     string `json:"quantity" binding:"required"`
	Unit         string `json:"unit"`
	UnitPrice    string `json:"unit_price" binding:"required"`
	Discount     string `json:"discount"`
	TaxableValue string `json:"taxable_value" binding:"required"`
	TaxRate      string `json:"tax_rate" binding:"required,oneof=0 0.1 0.25 3 5 12 18 28"`
	CgstAmount   string `json:"cgst_amount"`
	SgstAmount   string `json:"sgst_amount"`
	IgstAmount   string `json:"igst_amount"`
	CessAmount   string `json:"cess_amount"`
	TaxAmount    string `json:"tax_amount" binding:"required"`
	ItemTotal    string `json:"item_total" binding:"required"`
}

// CreateInvoiceRequest represents the payload for creating an invoice with
// its line items
type CreateInvoiceRequest struct {
	InvoiceNumber   string               `json:"invoice_number" binding:"required"`
	InvoiceDate     string               `json:"invoice_date" binding:"required"`
	InvoiceType     string               `json:"invoice_type" binding:"required,oneof=B2B B2C EXPORT DEEMED_EXPORT SEZ_WITH_PAYMENT SEZ_WITHOUT_PAYMENT"`
	DocumentType    string               `json:"document_type" binding:"omitempty,oneof=INV CRN DBN"`
	SellerGstin     string               `json:"seller_gstin" binding:"required,len=15"`
	SellerLegalName string               `json:"seller_legal_name" binding:"required"`
	SellerTradeName string               `json:"seller_trade_name"`
	SellerAddress   AddressRequest       `json:"seller_address" binding:"required"`
	BuyerGstin      string               `json:"buyer_gstin" binding:"required"`
	BuyerLegalName  string               `json:"buyer_legal_name" binding:"required"`
	BuyerAddress    AddressRequest       `json:"buyer_address" binding:"required"`
	PlaceOfSupply   string               `json:"place_of_supply" binding:"required,len=2"`
	SupplyType      string               `json:"supply_type" binding:"required,oneof=INTRA_STATE INTER_STATE"`
	ReverseCharge   bool                 `json:"reverse_charge"`
	TaxableValue    string               `json:"taxable_value" binding:"required"`
	TotalCgst       string               `json:"total_cgst"`
	TotalSgst       string               `json:"total_sgst"`
	TotalIgst       string               `json:"total_igst"`
	TotalCess       string               `json:"total_cess"`
	TaxAmount       string               `json:"tax_amount" binding:"required"`
	TotalValue      string               `json:"total_value" binding:"required"`
	ExportDetails   *json.RawMessage     `json:"export_details"`
	Items           []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceResponse is the API shape of an invoice
type InvoiceResponse struct {
	ID              uuid.UUID        `json:"id"`
	Object          string           `json:"object"`
	TenantID        uuid.UUID        `json:"tenant_id"`
	InvoiceNumber   string           `json:"invoice_number"`
	InvoiceDate     string           `json:"invoice_date"`
	InvoiceType     string           `json:"invoice_type"`
	DocumentType    string           `json:"document_type"`
	SupplyType      string           `json:"supply_type"`
	IrpStatus       string           `json:"irp_status"`
	Irn             string           `json:"irn,omitempty"`
	AckNo           string           `json:"ack_no,omitempty"`
	AckDate         *time.Time       `json:"ack_date,omitempty"`
	SignedJsonUrl   string           `json:"signed_json_url,omitempty"`
	QrCodeUrl       string           `json:"qr_code_url,omitempty"`
	IrpErrorMessage string           `json:"irp_error_message,omitempty"`
	Items           []db.InvoiceItem `json:"items,omitempty"`
}

func toInvoiceResponse(invoice db.Invoice, items []db.InvoiceItem) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            invoice.ID,
		Object:        "invoice",
		TenantID:      invoice.TenantID,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceType:   invoice.InvoiceType,
		DocumentType:  invoice.DocumentType,
		SupplyType:    invoice.SupplyType,
		IrpStatus:     invoice.IrpStatus,
		Items:         items,
	}
	if invoice.InvoiceDate.Valid {
		resp.InvoiceDate = invoice.InvoiceDate.Time.Format("2006-01-02")
	}
	if invoice.Irn.Valid {
		resp.Irn = invoice.Irn.String
	}
	if invoice.AckNo.Valid {
		resp.AckNo = invoice.AckNo.String
	}
	if invoice.AckDate.Valid {
		t := invoice.AckDate.Time
		resp.AckDate = &t
	}
	if invoice.SignedJsonUrl.Valid {
		resp.SignedJsonUrl = invoice.SignedJsonUrl.String
	}
	if invoice.QrCodeUrl.Valid {
		resp.QrCodeUrl = invoice.QrCodeUrl.String
	}
	if invoice.IrpErrorMessage.Valid {
		resp.IrpErrorMessage = invoice.IrpErrorMessage.String
	}
	return resp
}

func parseNumeric(value, field string) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if value == "" {
		value = "0"
	}
	if err := n.Scan(value); err != nil {
		return n, errors.Wrapf(err, "invalid %s", field)
	}
	return n, nil
}

// CreateInvoice persists an invoice and its line items for a tenant
func (s *CommonServices) CreateInvoice(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenantId"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid or missing tenantId query parameter", err)
		return
	}

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice_date, expected YYYY-MM-DD", err)
		return
	}

	sellerAddress, err := json.Marshal(einvoice.Address{
		Building:  req.SellerAddress.Building,
		Street:    req.SellerAddress.Street,
		Locality:  req.SellerAddress.Locality,
		City:      req.SellerAddress.City,
		Pincode:   req.SellerAddress.Pincode,
		StateCode: req.SellerAddress.StateCode,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode seller address", err)
		return
	}
	buyerAddress, err := json.Marshal(einvoice.Address{
		Building:  req.BuyerAddress.Building,
		Street:    req.BuyerAddress.Street,
		Locality:  req.BuyerAddress.Locality,
		City:      req.BuyerAddress.City,
		Pincode:   req.BuyerAddress.Pincode,
		StateCode: req.BuyerAddress.StateCode,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to encode buyer address", err)
		return
	}

	params := db.CreateInvoiceParams{
		TenantID:        tenantID,
		InvoiceNumber:   req.InvoiceNumber,
		InvoiceDate:     pgtype.Date{Time: invoiceDate, Valid: true},
		InvoiceType:     req.InvoiceType,
		DocumentType:    req.DocumentType,
		SellerGstin:     req.SellerGstin,
		SellerLegalName: req.SellerLegalName,
		SellerTradeName: pgtype.Text{String: req.SellerTradeName, Valid: req.SellerTradeName != ""},
		SellerAddress:   sellerAddress,
		BuyerGstin:      req.BuyerGstin,
		BuyerLegalName:  req.BuyerLegalName,
		BuyerAddress:    buyerAddress,
		PlaceOfSupply:   req.PlaceOfSupply,
		SupplyType:      req.SupplyType,
		ReverseCharge:   req.ReverseCharge,
	}
	if params.DocumentType == "" {
		params.DocumentType = "INV"
	}
	if req.ExportDetails != nil {
		params.ExportDetails = *req.ExportDetails
	}

	for _, field := range []struct {
		name   string
		value  string
		target *pgtype.Numeric
	}{
		{"taxable_value", req.TaxableValue, &params.TaxableValue},
		{"total_cgst", req.TotalCgst, &params.TotalCgst},
		{"total_sgst", req.TotalSgst, &params.TotalSgst},
		{"total_igst", req.TotalIgst, &params.TotalIgst},
		{"total_cess", req.TotalCess, &params.TotalCess},
		{"tax_amount", req.TaxAmount, &params.TaxAmount},
		{"total_value", req.TotalValue, &params.TotalValue},
	} {
		n, err := parseNumeric(field.value, field.name)
		if err != nil {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		*field.target = n
	}

	invoice, err := s.db.CreateInvoice(c.Request.Context(), params)
	if err != nil {
		handleDBError(c, err, "Failed to create invoice")
		return
	}

	items := make([]db.InvoiceItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		itemParams := db.CreateInvoiceItemParams{
			InvoiceID:   invoice.ID,
			Description: itemReq.Description,
			HsnCode:     itemReq.HsnCode,
			Unit:        itemReq.Unit,
		}
		if itemParams.Unit == "" {
			itemParams.Unit = "NOS"
		}

		for _, field := range []struct {
			name   string
			value  string
			target *pgtype.Numeric
		}{
			{"quantity", itemReq.Quantity, &itemParams.Quantity},
			{"unit_price", itemReq.UnitPrice, &itemParams.UnitPrice},
			{"discount", itemReq.Discount, &itemParams.Discount},
			{"taxable_value", itemReq.TaxableValue, &itemParams.TaxableValue},
			{"tax_rate", itemReq.TaxRate, &itemParams.TaxRate},
			{"cgst_amount", itemReq.CgstAmount, &itemParams.CgstAmount},
			{"sgst_amount", itemReq.SgstAmount, &itemParams.SgstAmount},
			{"igst_amount", itemReq.IgstAmount, &itemParams.IgstAmount},
			{"cess_amount", itemReq.CessAmount, &itemParams.CessAmount},
			{"tax_amount", itemReq.TaxAmount, &itemParams.TaxAmount},
			{"item_total", itemReq.ItemTotal, &itemParams.ItemTotal},
		} {
			n, err := parseNumeric(field.value, field.name)
			if err != nil {
				sendError(c, http.StatusBadRequest, err.Error(), err)
				return
			}
			*field.target = n
		}

		item, err := s.db.CreateInvoiceItem(c.Request.Context(), itemParams)
		if err != nil {
			handleDBError(c, err, "Failed to create invoice item")
			return
		}
		items = append(items, item)
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Int("items", len(items)))

	sendSuccess(c, http.StatusCreated, toInvoiceResponse(invoice, items))
}

// GetInvoice returns an invoice with its line items
func (s *CommonServices) GetInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	invoice, err := s.db.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		handleDBError(c, err, "Invoice not found")
		return
	}

	items, err := s.db.ListInvoiceItems(c.Request.Context(), invoiceID)
	if err != nil {
		handleDBError(c, err, "Failed to load invoice items")
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice, items))
}

// ListInvoices returns a tenant's invoices, newest first
func (s *CommonServices) ListInvoices(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenantId"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid or missing tenantId query parameter", err)
		return
	}

	invoices, err := s.db.ListInvoicesByTenant(c.Request.Context(), tenantID)
	if err != nil {
		handleDBError(c, err, "Failed to list invoices")
		return
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, toInvoiceResponse(invoice, nil))
	}
	sendList(c, responses)
}

// SubmitInvoice queues an invoice for IRN generation and hands it to the
// background processor
func (s *CommonServices) SubmitInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	invoice, err := s.einvoice.RequestSubmission(c.Request.Context(), invoiceID)
	if err != nil {
		s.sendEinvoiceError(c, err)
		return
	}

	if s.processor != nil {
		s.processor.Enqueue(invoiceID)
	}

	sendSuccess(c, http.StatusAccepted, toInvoiceResponse(invoice, nil))
}
