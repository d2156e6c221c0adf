package gateway

import (
	"encoding/base64"
	"errors"
)

// ErrMissingCredential is returned by every request builder when the
// contract carries no authorization key. Construction fails before any
// network access can happen.
var ErrMissingCredential = errors.New("gateway request requires an authorization key")

// Contract is the merchant configuration the host supplies on every call.
type Contract struct {
	MerchantName       string
	MerchantID         string
	AuthorizationKey   string
	SettlementKey      string
	MinAge             string
	KYCLevel           string
	CountryRestriction string
}

// Payment is the buyer/session snapshot for one payment attempt.
type Payment struct {
	OrderID    string
	Amount     string
	Currency   string
	CustomerID string
	SuccessURL string
	FailureURL string
	NotifyURL  string
}

// Refund identifies the transaction to pay back.
type Refund struct {
	TransactionID string
	Amount        string
	Currency      string
	CustomerID    string
}

// authHeader is the capability every request variant shares: a rendered
// Authorization header value. Only builders in this package can mint one.
type authHeader string

func newAuthHeader(c Contract) (authHeader, error) {
	if c.AuthorizationKey == "" {
		return "", ErrMissingCredential
	}
	return authHeader("Basic " + encodeToBase64(c.AuthorizationKey)), nil
}

func (h authHeader) AuthenticationHeader() string { return string(h) }

// encodeToBase64 never fails; an empty input encodes to the empty string.
func encodeToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Customer is the buyer restrictions block of an initiate or refund body.
type Customer struct {
	ID                 string `json:"id"`
	MinAge             string `json:"min_age,omitempty"`
	KYCLevel           string `json:"kyc_level,omitempty"`
	CountryRestriction string `json:"country_restriction,omitempty"`
}

// RequestRedirect carries the merchant's return URLs on an initiate body.
type RequestRedirect struct {
	SuccessURL string `json:"success_url"`
	FailureURL string `json:"failure_url"`
}

// InitiateRequest opens a new payment session.
type InitiateRequest struct {
	authHeader

	Amount          string          `json:"amount"`
	Currency        string          `json:"currency"`
	MerchantID      string          `json:"merchant_id"`
	OrderID         string          `json:"order_id"`
	Customer        Customer        `json:"customer"`
	Redirect        RequestRedirect `json:"redirect"`
	NotificationURL string          `json:"notification_url,omitempty"`
}

func NewInitiateRequest(c Contract, p Payment) (InitiateRequest, error) {
	h, err := newAuthHeader(c)
	if err != nil {
		return InitiateRequest{}, err
	}
	return InitiateRequest{
		authHeader: h,
		Amount:     p.Amount,
		Currency:   p.Currency,
		MerchantID: c.MerchantID,
		OrderID:    p.OrderID,
		Customer: Customer{
			ID:                 p.CustomerID,
			MinAge:             c.MinAge,
			KYCLevel:           c.KYCLevel,
			CountryRestriction: c.CountryRestriction,
		},
		Redirect:        RequestRedirect{SuccessURL: p.SuccessURL, FailureURL: p.FailureURL},
		NotificationURL: p.NotifyURL,
	}, nil
}

// CaptureRequest addresses an existing payment for status retrieval and
// capture. A resumed redirect, an explicit payment id and a status check
// all build the same value: the status check's transaction id doubles as
// the payment id.
type CaptureRequest struct {
	authHeader
	paymentID string
}

func NewCaptureRequest(c Contract, paymentID string) (CaptureRequest, error) {
	h, err := newAuthHeader(c)
	if err != nil {
		return CaptureRequest{}, err
	}
	return CaptureRequest{authHeader: h, paymentID: paymentID}, nil
}

func (r CaptureRequest) PaymentID() string { return r.paymentID }

// RefundRequest is the body of both refund legs. The capture flag starts
// false; the second leg uses the copy WithCapture returns.
type RefundRequest struct {
	authHeader
	paymentID string

	Amount   string   `json:"amount"`
	Currency string   `json:"currency"`
	Customer Customer `json:"customer"`
	Capture  bool     `json:"capture"`
}

func NewRefundRequest(c Contract, r Refund) (RefundRequest, error) {
	h, err := newAuthHeader(c)
	if err != nil {
		return RefundRequest{}, err
	}
	return RefundRequest{
		authHeader: h,
		paymentID:  r.TransactionID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Customer:   Customer{ID: r.CustomerID},
	}, nil
}

func (r RefundRequest) PaymentID() string { return r.paymentID }

// WithCapture returns a copy with the capture flag set. The two refund
// legs are distinct values, never a shared mutated request.
func (r RefundRequest) WithCapture(capture bool) RefundRequest {
	r.Capture = capture
	return r
}
