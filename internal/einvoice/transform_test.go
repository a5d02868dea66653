package einvoice

import (
	"encoding/json"
	"testing"
	"time"

	"gstdesk-api/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNumeric(t *testing.T, value string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	require.NoError(t, n.Scan(value))
	return n
}

func testAddressJSON(building, street, city, pincode, stateCode string) []byte {
	return []byte(`{"building":"` + building + `","street":"` + street +
		`","locality":"Industrial Area","city":"` + city +
		`","pincode":"` + pincode + `","state_code":"` + stateCode + `"}`)
}

func testInvoice(t *testing.T) db.Invoice {
	t.Helper()
	return db.Invoice{
		ID:              uuid.New(),
		TenantID:        uuid.New(),
		InvoiceNumber:   "INV/1",
		InvoiceDate:     pgtype.Date{Time: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		InvoiceType:     "B2B",
		DocumentType:    "INV",
		SellerGstin:     "29AABCT1332L000",
		SellerLegalName: "Acme Traders Pvt Ltd",
		SellerTradeName: pgtype.Text{String: "Acme", Valid: true},
		SellerAddress:   testAddressJSON("12", "MG Road", "Bengaluru", "560001", "29"),
		BuyerGstin:      "27AAACR5055K1Z7",
		BuyerLegalName:  "Retail Co",
		BuyerAddress:    testAddressJSON("4", "Link Road", "Mumbai", "400001", "27"),
		PlaceOfSupply:   "27",
		SupplyType:      "INTER_STATE",
		ReverseCharge:   false,
		TaxableValue:    mustNumeric(t, "100.00"),
		TotalCgst:       mustNumeric(t, "0.00"),
		TotalSgst:       mustNumeric(t, "0.00"),
		TotalIgst:       mustNumeric(t, "18.00"),
		TotalCess:       mustNumeric(t, "0.00"),
		TaxAmount:       mustNumeric(t, "18.00"),
		TotalValue:      mustNumeric(t, "118.00"),
		IrpStatus:       "pending",
	}
}

func testItem(t *testing.T, hsnCode string) db.InvoiceItem {
	t.Helper()
	return db.InvoiceItem{
		ID:           uuid.New(),
		Description:  "Consulting services",
		HsnCode:      hsnCode,
		Quantity:     mustNumeric(t, "1.000"),
		Unit:         "NOS",
		UnitPrice:    mustNumeric(t, "100.00"),
		Discount:     mustNumeric(t, "0.00"),
		TaxableValue: mustNumeric(t, "100.00"),
		TaxRate:      mustNumeric(t, "18.00"),
		CgstAmount:   mustNumeric(t, "0.00"),
		SgstAmount:   mustNumeric(t, "0.00"),
		IgstAmount:   mustNumeric(t, "18.00"),
		CessAmount:   mustNumeric(t, "0.00"),
		TaxAmount:    mustNumeric(t, "18.00"),
		ItemTotal:    mustNumeric(t, "118.00"),
	}
}

func TestBuildPayloadServiceItem(t *testing.T) {
	invoice := testInvoice(t)
	items := []db.InvoiceItem{testItem(t, "998314")}

	payload, err := BuildPayload(invoice, items)
	require.NoError(t, err)

	require.Len(t, payload.ItemList, 1)
	item := payload.ItemList[0]
	assert.Equal(t, "1", item.SlNo)
	assert.Equal(t, "Y", item.IsServc)
	assert.Equal(t, 18.0, item.IgstAmt)
	assert.Equal(t, 118.0, item.TotItemVal)
	assert.Equal(t, 100.0, item.TotAmt)

	assert.Equal(t, "1.1", payload.Version)
	assert.Equal(t, "GST", payload.TranDtls.TaxSch)
	assert.Equal(t, "B2B", payload.TranDtls.SupTyp)
	assert.Equal(t, "Y", payload.TranDtls.IgstOnIntra)
	assert.Equal(t, "N", payload.TranDtls.RegRev)
}

func TestBuildPayloadGoodsItem(t *testing.T) {
	invoice := testInvoice(t)
	items := []db.InvoiceItem{testItem(t, "8471")}

	payload, err := BuildPayload(invoice, items)
	require.NoError(t, err)
	assert.Equal(t, "N", payload.ItemList[0].IsServc)
	assert.Equal(t, "8471", payload.ItemList[0].HsnCd)
}

func TestBuildPayloadSerialNumbersFollowOrder(t *testing.T) {
	invoice := testInvoice(t)
	items := []db.InvoiceItem{testItem(t, "8471"), testItem(t, "998314"), testItem(t, "8517")}

	payload, err := BuildPayload(invoice, items)
	require.NoError(t, err)

	require.Len(t, payload.ItemList, 3)
	assert.Equal(t, "1", payload.ItemList[0].SlNo)
	assert.Equal(t, "2", payload.ItemList[1].SlNo)
	assert.Equal(t, "3", payload.ItemList[2].SlNo)
}

func TestBuildPayloadDocumentBlock(t *testing.T) {
	invoice := testInvoice(t)
	payload, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	require.NoError(t, err)

	assert.Equal(t, "INV", payload.DocDtls.Typ)
	assert.Equal(t, "INV/1", payload.DocDtls.No)
	assert.Equal(t, "10/03/2026", payload.DocDtls.Dt)
}

func TestBuildPayloadParties(t *testing.T) {
	invoice := testInvoice(t)
	payload, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	require.NoError(t, err)

	seller := payload.SellerDtls
	assert.Equal(t, "29AABCT1332L000", seller.Gstin)
	assert.Equal(t, "Acme", seller.TrdNm)
	assert.Equal(t, "12, MG Road", seller.Addr1)
	assert.NotContains(t, seller.Addr1, "Industrial Area")
	assert.Equal(t, "Bengaluru", seller.Loc)
	assert.Equal(t, 560001, seller.Pin)
	assert.Equal(t, "29", seller.Stcd)

	buyer := payload.BuyerDtls
	assert.Equal(t, "27", buyer.Pos)
	assert.Equal(t, "4, Link Road", buyer.Addr1)
	assert.Equal(t, 400001, buyer.Pin)
	assert.Empty(t, buyer.TrdNm)
}

func TestBuildPayloadIntraState(t *testing.T) {
	invoice := testInvoice(t)
	invoice.SupplyType = "INTRA_STATE"
	invoice.ReverseCharge = true

	payload, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	require.NoError(t, err)
	assert.Equal(t, "N", payload.TranDtls.IgstOnIntra)
	assert.Equal(t, "Y", payload.TranDtls.RegRev)
}

func TestBuildPayloadTotalsCopiedVerbatim(t *testing.T) {
	invoice := testInvoice(t)
	payload, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	require.NoError(t, err)

	assert.Equal(t, 100.0, payload.ValDtls.AssVal)
	assert.Equal(t, 18.0, payload.ValDtls.IgstVal)
	assert.Equal(t, 0.0, payload.ValDtls.CgstVal)
	assert.Equal(t, 118.0, payload.ValDtls.TotInvVal)
}

func TestBuildPayloadEmitsFixedSchemaZeroFields(t *testing.T) {
	invoice := testInvoice(t)
	payload, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	require.NoError(t, err)

	// The gateway schema is fixed; these fields must be on the wire as
	// literal zeros, never omitted.
	itemJSON, err := json.Marshal(payload.ItemList[0])
	require.NoError(t, err)
	assert.Contains(t, string(itemJSON), `"CesRt":0`)
	assert.Contains(t, string(itemJSON), `"CesAmt":0`)

	valJSON, err := json.Marshal(payload.ValDtls)
	require.NoError(t, err)
	assert.Contains(t, string(valJSON), `"StCesVal":0`)
	assert.Contains(t, string(valJSON), `"Discount":0`)
	assert.Contains(t, string(valJSON), `"RndOffAmt":0`)
}

func TestBuildPayloadExportDetails(t *testing.T) {
	invoice := testInvoice(t)
	invoice.InvoiceType = "EXPORT"
	invoice.ExportDetails = []byte(`{"port_code":"INMAA1","shipping_bill_no":"SB123","country_code":"US","foreign_currency":"USD","refund_claim":true}`)

	payload, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	require.NoError(t, err)

	require.NotNil(t, payload.ExpDtls)
	assert.Equal(t, "INMAA1", payload.ExpDtls.Port)
	assert.Equal(t, "SB123", payload.ExpDtls.ShipBNo)
	assert.Equal(t, "Y", payload.ExpDtls.RefClm)
}

func TestBuildPayloadNoItems(t *testing.T) {
	invoice := testInvoice(t)

	_, err := BuildPayload(invoice, nil)
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Contains(t, mapErr.Reason, "no line items")
}

func TestBuildPayloadMissingAddress(t *testing.T) {
	invoice := testInvoice(t)
	invoice.BuyerAddress = nil

	_, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Contains(t, mapErr.Reason, "buyer address")
}

func TestBuildPayloadIncompleteAddress(t *testing.T) {
	invoice := testInvoice(t)
	invoice.SellerAddress = []byte(`{"building":"12","pincode":"560001"}`)

	_, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Contains(t, mapErr.Reason, "seller address is incomplete")
}

func TestBuildPayloadBadPincode(t *testing.T) {
	invoice := testInvoice(t)
	invoice.SellerAddress = testAddressJSON("12", "MG Road", "Bengaluru", "56OO01", "29")

	_, err := BuildPayload(invoice, []db.InvoiceItem{testItem(t, "8471")})
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Contains(t, mapErr.Reason, "pincode")
}
