package einvoice

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gstdesk-api/internal/client/irp"
	"gstdesk-api/internal/db"

	"github.com/jackc/pgx/v5/pgtype"
)

// Address is the structured form of the jsonb address columns on invoices
type Address struct {
	Building  string `json:"building"`
	Street    string `json:"street"`
	Locality  string `json:"locality,omitempty"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	StateCode string `json:"state_code"`
}

// ExportDetails is the structured form of the export_details jsonb column,
// present only on export-type invoices
type ExportDetails struct {
	PortCode        string `json:"port_code,omitempty"`
	ShippingBillNo  string `json:"shipping_bill_no,omitempty"`
	ShippingBillDt  string `json:"shipping_bill_date,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
	ForeignCurrency string `json:"foreign_currency,omitempty"`
	RefundClaim     bool   `json:"refund_claim,omitempty"`
}

// BuildPayload maps an invoice and its line items to the gateway wire
// format. It performs no I/O and trusts the stored tax arithmetic; totals
// are copied, never recomputed.
func BuildPayload(invoice db.Invoice, items []db.InvoiceItem) (*irp.InvoicePayload, error) {
	if len(items) == 0 {
		return nil, &MappingError{Reason: "no line items"}
	}

	sellerAddr, err := parseAddress(invoice.SellerAddress, "seller")
	if err != nil {
		return nil, err
	}
	buyerAddr, err := parseAddress(invoice.BuyerAddress, "buyer")
	if err != nil {
		return nil, err
	}

	sellerPin, err := parsePincode(sellerAddr.Pincode, "seller")
	if err != nil {
		return nil, err
	}
	buyerPin, err := parsePincode(buyerAddr.Pincode, "buyer")
	if err != nil {
		return nil, err
	}

	itemList := make([]irp.Item, 0, len(items))
	for i, item := range items {
		qty, err := numericFloat(item.Quantity, "quantity")
		if err != nil {
			return nil, err
		}
		unitPrice, err := numericFloat(item.UnitPrice, "unit price")
		if err != nil {
			return nil, err
		}
		discount, err := numericFloat(item.Discount, "discount")
		if err != nil {
			return nil, err
		}
		assAmt, err := numericFloat(item.TaxableValue, "taxable value")
		if err != nil {
			return nil, err
		}
		gstRate, err := numericFloat(item.TaxRate, "tax rate")
		if err != nil {
			return nil, err
		}
		cgst, err := numericFloat(item.CgstAmount, "cgst")
		if err != nil {
			return nil, err
		}
		sgst, err := numericFloat(item.SgstAmount, "sgst")
		if err != nil {
			return nil, err
		}
		igst, err := numericFloat(item.IgstAmount, "igst")
		if err != nil {
			return nil, err
		}
		cess, err := numericFloat(item.CessAmount, "cess")
		if err != nil {
			return nil, err
		}
		itemTotal, err := numericFloat(item.ItemTotal, "item total")
		if err != nil {
			return nil, err
		}

		itemList = append(itemList, irp.Item{
			SlNo:       strconv.Itoa(i + 1),
			PrdDesc:    item.Description,
			IsServc:    yesNo(strings.HasPrefix(item.HsnCode, "99")),
			HsnCd:      item.HsnCode,
			Qty:        qty,
			Unit:       item.Unit,
			UnitPrice:  unitPrice,
			TotAmt:     qty * unitPrice,
			Discount:   discount,
			AssAmt:     assAmt,
			GstRt:      gstRate,
			CgstAmt:    cgst,
			SgstAmt:    sgst,
			IgstAmt:    igst,
			CesAmt:     cess,
			TotItemVal: itemTotal,
		})
	}

	assVal, err := numericFloat(invoice.TaxableValue, "taxable value")
	if err != nil {
		return nil, err
	}
	cgstVal, err := numericFloat(invoice.TotalCgst, "total cgst")
	if err != nil {
		return nil, err
	}
	sgstVal, err := numericFloat(invoice.TotalSgst, "total sgst")
	if err != nil {
		return nil, err
	}
	igstVal, err := numericFloat(invoice.TotalIgst, "total igst")
	if err != nil {
		return nil, err
	}
	cessVal, err := numericFloat(invoice.TotalCess, "total cess")
	if err != nil {
		return nil, err
	}
	totalVal, err := numericFloat(invoice.TotalValue, "total value")
	if err != nil {
		return nil, err
	}

	var expDtls *irp.ExpDtls
	if len(invoice.ExportDetails) > 0 {
		var export ExportDetails
		if err := json.Unmarshal(invoice.ExportDetails, &export); err != nil {
			return nil, &MappingError{Reason: fmt.Sprintf("export details are malformed: %v", err)}
		}
		refClm := "N"
		if export.RefundClaim {
			refClm = "Y"
		}
		expDtls = &irp.ExpDtls{
			ShipBNo: export.ShippingBillNo,
			ShipBDt: export.ShippingBillDt,
			Port:    export.PortCode,
			RefClm:  refClm,
			ForCur:  export.ForeignCurrency,
			CntCode: export.CountryCode,
		}
	}

	payload := &irp.InvoicePayload{
		Version: "1.1",
		TranDtls: irp.TranDtls{
			TaxSch:      "GST",
			SupTyp:      invoice.InvoiceType,
			RegRev:      yesNo(invoice.ReverseCharge),
			IgstOnIntra: yesNo(invoice.SupplyType == "INTER_STATE"),
		},
		DocDtls: irp.DocDtls{
			Typ: invoice.DocumentType,
			No:  invoice.InvoiceNumber,
			Dt:  invoice.InvoiceDate.Time.Format("02/01/2006"),
		},
		SellerDtls: irp.PartyDtls{
			Gstin: invoice.SellerGstin,
			LglNm: invoice.SellerLegalName,
			TrdNm: textOrEmpty(invoice.SellerTradeName),
			Addr1: addressLine(sellerAddr),
			Loc:   sellerAddr.City,
			Pin:   sellerPin,
			Stcd:  sellerAddr.StateCode,
		},
		BuyerDtls: irp.PartyDtls{
			Gstin: invoice.BuyerGstin,
			LglNm: invoice.BuyerLegalName,
			Pos:   invoice.PlaceOfSupply,
			Addr1: addressLine(buyerAddr),
			Loc:   buyerAddr.City,
			Pin:   buyerPin,
			Stcd:  buyerAddr.StateCode,
		},
		ItemList: itemList,
		ValDtls: irp.ValDtls{
			AssVal:    assVal,
			CgstVal:   cgstVal,
			SgstVal:   sgstVal,
			IgstVal:   igstVal,
			CesVal:    cessVal,
			TotInvVal: totalVal,
		},
		ExpDtls: expDtls,
	}

	return payload, nil
}

// addressLine joins building and street for the wire address line. The
// locality sub-field is deliberately not part of the line; it stays in the
// stored address only.
func addressLine(addr Address) string {
	return fmt.Sprintf("%s, %s", addr.Building, addr.Street)
}

func parseAddress(raw []byte, party string) (Address, error) {
	var addr Address
	if len(raw) == 0 {
		return addr, &MappingError{Reason: fmt.Sprintf("%s address is missing", party)}
	}
	if err := json.Unmarshal(raw, &addr); err != nil {
		return addr, &MappingError{Reason: fmt.Sprintf("%s address is malformed: %v", party, err)}
	}
	if addr.Building == "" || addr.Street == "" || addr.City == "" || addr.StateCode == "" {
		return addr, &MappingError{Reason: fmt.Sprintf("%s address is incomplete", party)}
	}
	return addr, nil
}

func parsePincode(pincode, party string) (int, error) {
	pin, err := strconv.Atoi(pincode)
	if err != nil {
		return 0, &MappingError{Reason: fmt.Sprintf("%s pincode %q is not numeric", party, pincode)}
	}
	return pin, nil
}

func numericFloat(n pgtype.Numeric, field string) (float64, error) {
	if !n.Valid {
		return 0, &MappingError{Reason: fmt.Sprintf("%s is not set", field)}
	}
	v, err := n.Float64Value()
	if err != nil {
		return 0, &MappingError{Reason: fmt.Sprintf("%s is not a number: %v", field, err)}
	}
	return v.Float64, nil
}

func textOrEmpty(t pgtype.Text) string {
	if t.Valid {
		return t.String
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
