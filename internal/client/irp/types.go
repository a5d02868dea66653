package irp

import "encoding/json"

// Wire types for the NIC e-invoice gateway (einv v1.03). Field names and
// casing follow the published schema exactly; omitempty only where the
// gateway treats the field as optional.

// TranDtls carries the transaction classification block
type TranDtls struct {
	TaxSch      string `json:"TaxSch"`
	SupTyp      string `json:"SupTyp"`
	RegRev      string `json:"RegRev"`
	IgstOnIntra string `json:"IgstOnIntra"`
}

// DocDtls identifies the document being registered
type DocDtls struct {
	Typ string `json:"Typ"`
	No  string `json:"No"`
	Dt  string `json:"Dt"`
}

// PartyDtls describes the seller or buyer party block
type PartyDtls struct {
	Gstin string `json:"Gstin"`
	LglNm string `json:"LglNm"`
	TrdNm string `json:"TrdNm,omitempty"`
	Pos   string `json:"Pos,omitempty"`
	Addr1 string `json:"Addr1"`
	Loc   string `json:"Loc"`
	Pin   int    `json:"Pin"`
	Stcd  string `json:"Stcd"`
}

// Item is one line of the registered document
type Item struct {
	SlNo       string  `json:"SlNo"`
	PrdDesc    string  `json:"PrdDesc"`
	IsServc    string  `json:"IsServc"`
	HsnCd      string  `json:"HsnCd"`
	Qty        float64 `json:"Qty"`
	Unit       string  `json:"Unit"`
	UnitPrice  float64 `json:"UnitPrice"`
	TotAmt     float64 `json:"TotAmt"`
	Discount   float64 `json:"Discount"`
	AssAmt     float64 `json:"AssAmt"`
	GstRt      float64 `json:"GstRt"`
	CgstAmt    float64 `json:"CgstAmt"`
	SgstAmt    float64 `json:"SgstAmt"`
	IgstAmt    float64 `json:"IgstAmt"`
	CesRt      float64 `json:"CesRt"`
	CesAmt     float64 `json:"CesAmt"`
	TotItemVal float64 `json:"TotItemVal"`
}

// ValDtls carries document level totals. StCesVal, Discount and RndOffAmt
// are part of the fixed schema and always present, even when zero.
type ValDtls struct {
	AssVal    float64 `json:"AssVal"`
	CgstVal   float64 `json:"CgstVal"`
	SgstVal   float64 `json:"SgstVal"`
	IgstVal   float64 `json:"IgstVal"`
	CesVal    float64 `json:"CesVal"`
	StCesVal  float64 `json:"StCesVal"`
	Discount  float64 `json:"Discount"`
	RndOffAmt float64 `json:"RndOffAmt"`
	TotInvVal float64 `json:"TotInvVal"`
}

// ExpDtls carries shipping bill details for export supply types
type ExpDtls struct {
	ShipBNo string `json:"ShipBNo,omitempty"`
	ShipBDt string `json:"ShipBDt,omitempty"`
	Port    string `json:"Port,omitempty"`
	RefClm  string `json:"RefClm,omitempty"`
	ForCur  string `json:"ForCur,omitempty"`
	CntCode string `json:"CntCode,omitempty"`
}

// InvoicePayload is the full generate request body
type InvoicePayload struct {
	Version    string    `json:"Version"`
	TranDtls   TranDtls  `json:"TranDtls"`
	DocDtls    DocDtls   `json:"DocDtls"`
	SellerDtls PartyDtls `json:"SellerDtls"`
	BuyerDtls  PartyDtls `json:"BuyerDtls"`
	ItemList   []Item    `json:"ItemList"`
	ValDtls    ValDtls   `json:"ValDtls"`
	ExpDtls    *ExpDtls  `json:"ExpDtls,omitempty"`
}

// GenerateResponse is the gateway's answer to a successful registration.
// AckNo and EwbNo are json.Number because the gateway has been observed to
// send them both quoted and unquoted.
type GenerateResponse struct {
	Irn           string      `json:"Irn"`
	AckNo         json.Number `json:"AckNo"`
	AckDt         string      `json:"AckDt"`
	SignedInvoice string      `json:"SignedInvoice"`
	SignedQRCode  string      `json:"SignedQRCode"`
	Status        string      `json:"Status"`
	EwbNo         json.Number `json:"EwbNo,omitempty"`
	EwbDt         string      `json:"EwbDt,omitempty"`
	EwbValidTill  string      `json:"EwbValidTill,omitempty"`

	// InfoDtls carries advisory notices from the gateway; kept raw since the
	// shape varies by notice type
	InfoDtls json.RawMessage `json:"InfoDtls,omitempty"`
}

// CancelResponse is the gateway's answer to a cancellation
type CancelResponse struct {
	Irn        string `json:"Irn"`
	CancelDate string `json:"CancelDate"`
}

type authRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	GrantType    string `json:"grant_type"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type errorBody struct {
	Message     string `json:"message"`
	ErrorCode   string `json:"error_cd"`
	ErrorSource string `json:"error_source"`
}
