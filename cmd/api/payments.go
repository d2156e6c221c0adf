package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"cardlink/internal/connector"
	"cardlink/internal/gateway"
)

// contractPayload is the merchant configuration the host forwards on
// every call. Credential presence is the connector's own precondition,
// so it is not enforced here.
type contractPayload struct {
	MerchantName       string `json:"merchant_name"`
	MerchantID         string `json:"merchant_id"`
	AuthorizationKey   string `json:"authorization_key"`
	SettlementKey      string `json:"settlement_key,omitempty"`
	MinAge             string `json:"min_age,omitempty"`
	KYCLevel           string `json:"kyc_level,omitempty" validate:"omitempty,oneof=SIMPLE FULL"`
	CountryRestriction string `json:"country_restriction,omitempty"`
}

func (p contractPayload) toContract() gateway.Contract {
	return gateway.Contract{
		MerchantName:       p.MerchantName,
		MerchantID:         p.MerchantID,
		AuthorizationKey:   p.AuthorizationKey,
		SettlementKey:      p.SettlementKey,
		MinAge:             p.MinAge,
		KYCLevel:           p.KYCLevel,
		CountryRestriction: p.CountryRestriction,
	}
}

type initiatePayload struct {
	Contract        contractPayload `json:"contract"`
	OrderID         string          `json:"order_id"`
	Amount          string          `json:"amount" validate:"required"`
	Currency        string          `json:"currency" validate:"required,iso4217"`
	CustomerID      string          `json:"customer_id" validate:"required"`
	SuccessURL      string          `json:"success_url" validate:"required,url"`
	FailureURL      string          `json:"failure_url" validate:"required,url"`
	NotificationURL string          `json:"notification_url" validate:"omitempty,url"`
	Sandbox         bool            `json:"sandbox"`
}

type resumePayload struct {
	Contract contractPayload `json:"contract"`
	Sandbox  bool            `json:"sandbox"`
}

type refundPayload struct {
	Contract   contractPayload `json:"contract"`
	Amount     string          `json:"amount" validate:"required"`
	Currency   string          `json:"currency" validate:"required,iso4217"`
	CustomerID string          `json:"customer_id"`
	Sandbox    bool            `json:"sandbox"`
}

// outcomeEnvelope is the JSON shape every lifecycle answer uses; exactly
// one of the optional blocks is set, named by Kind.
type outcomeEnvelope struct {
	Kind     string                    `json:"kind"`
	Redirect *connector.Redirect       `json:"redirect,omitempty"`
	Capture  *connector.CaptureSuccess `json:"capture,omitempty"`
	Refund   *connector.RefundSuccess  `json:"refund,omitempty"`
	Failure  *connector.Failure        `json:"failure,omitempty"`
}

func (app *application) writeOutcome(w http.ResponseWriter, r *http.Request, out connector.Outcome) {
	var env outcomeEnvelope
	switch o := out.(type) {
	case connector.Redirect:
		env = outcomeEnvelope{Kind: "redirect", Redirect: &o}
	case connector.CaptureSuccess:
		env = outcomeEnvelope{Kind: "capture_success", Capture: &o}
	case connector.RefundSuccess:
		env = outcomeEnvelope{Kind: "refund_success", Refund: &o}
	case connector.Failure:
		env = outcomeEnvelope{Kind: "failure", Failure: &o}
	default:
		app.internalServerError(w, r, fmt.Errorf("unexpected outcome type %T", out))
		return
	}
	if err := app.jsonResponse(w, http.StatusOK, env); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) initiatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payload initiatePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if payload.OrderID == "" {
		payload.OrderID = uuid.NewString()
	}

	outcome := app.connector.InitiatePayment(r.Context(), connector.PaymentContext{
		Contract: payload.Contract.toContract(),
		Payment: gateway.Payment{
			OrderID:    payload.OrderID,
			Amount:     payload.Amount,
			Currency:   payload.Currency,
			CustomerID: payload.CustomerID,
			SuccessURL: payload.SuccessURL,
			FailureURL: payload.FailureURL,
			NotifyURL:  payload.NotificationURL,
		},
		Sandbox: payload.Sandbox,
	})
	app.writeOutcome(w, r, outcome)
}

func (app *application) finalizePaymentHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	var payload resumePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	outcome := app.connector.FinalizeRedirectionPayment(r.Context(), connector.ResumeContext{
		Contract:    payload.Contract.toContract(),
		ResumeToken: paymentID,
		Sandbox:     payload.Sandbox,
	})
	app.writeOutcome(w, r, outcome)
}

func (app *application) sessionExpiredHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	var payload resumePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	outcome := app.connector.HandleSessionExpired(r.Context(), connector.StatusContext{
		Contract:      payload.Contract.toContract(),
		TransactionID: paymentID,
		Sandbox:       payload.Sandbox,
	})
	app.writeOutcome(w, r, outcome)
}

func (app *application) refundHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	var payload refundPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	outcome := app.connector.RefundRequest(r.Context(), connector.RefundContext{
		Contract:      payload.Contract.toContract(),
		TransactionID: paymentID,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		CustomerID:    payload.CustomerID,
		Sandbox:       payload.Sandbox,
	})
	app.writeOutcome(w, r, outcome)
}
