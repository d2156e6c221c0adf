// Package connector drives the CardLink gateway through its
// redirect-based authorization flow: initiate, resume after redirect,
// capture, refund. Every entry point takes a fresh per-call context and
// always returns a well-formed Outcome.
package connector

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cardlink/internal/gateway"
)

// API is the gateway surface the orchestrator drives.
type API interface {
	Initiate(ctx context.Context, req gateway.InitiateRequest, sandbox bool) (gateway.PaymentResponse, error)
	Retrieve(ctx context.Context, req gateway.CaptureRequest, sandbox bool) (gateway.PaymentResponse, error)
	Capture(ctx context.Context, req gateway.CaptureRequest, sandbox bool) (gateway.PaymentResponse, error)
	Refund(ctx context.Context, req gateway.RefundRequest, sandbox bool) (gateway.PaymentResponse, error)
}

type Connector struct {
	gateway API
	logger  *zap.SugaredLogger
}

func New(api API, logger *zap.SugaredLogger) *Connector {
	return &Connector{gateway: api, logger: logger}
}

// PaymentContext is the immutable snapshot of one payment attempt.
type PaymentContext struct {
	Contract gateway.Contract
	Payment  gateway.Payment
	Sandbox  bool
}

// ResumeContext resumes the flow after the buyer comes back from the
// redirect; ResumeToken is the payment id handed out at initiation.
type ResumeContext struct {
	Contract    gateway.Contract
	ResumeToken string
	Sandbox     bool
}

// StatusContext checks a payment the host already considers expired; the
// transaction id doubles as the gateway payment id.
type StatusContext struct {
	Contract      gateway.Contract
	TransactionID string
	Sandbox       bool
}

type RefundContext struct {
	Contract      gateway.Contract
	TransactionID string
	Amount        string
	Currency      string
	CustomerID    string
	Sandbox       bool
}

// InitiatePayment opens a session and hands the redirect URL back to the
// host together with the resume token.
func (c *Connector) InitiatePayment(ctx context.Context, pc PaymentContext) Outcome {
	req, err := gateway.NewInitiateRequest(pc.Contract, pc.Payment)
	if err != nil {
		c.logger.Errorw("unable to init the payment", "order_id", pc.Payment.OrderID, "err", err)
		return Failure{Cause: CauseInternalError}
	}

	resp, err := c.gateway.Initiate(ctx, req, pc.Sandbox)
	if err != nil {
		c.logger.Errorw("unable to init the payment", "order_id", pc.Payment.OrderID, "err", err)
		return Failure{Cause: CauseInternalError}
	}
	if resp.IsError() {
		return classifyError(resp)
	}

	return Redirect{URL: resp.RedirectURL(), ResumeToken: resp.ID, Status: resp.Status}
}

// FinalizeRedirectionPayment validates and captures the payment once the
// buyer is back. If the first validation does not succeed it validates
// once more, immediately and unconditionally, and that second result
// wins: one re-poll absorbs an authorization that settled slightly late
// on the redirect path. There is no third try.
func (c *Connector) FinalizeRedirectionPayment(ctx context.Context, rc ResumeContext) Outcome {
	req, err := gateway.NewCaptureRequest(rc.Contract, rc.ResumeToken)
	if err != nil {
		c.logger.Errorw("unable to finalize the payment", "payment_id", rc.ResumeToken, "err", err)
		return Failure{Cause: CauseInternalError}
	}

	out := c.validatePayment(ctx, req, rc.Sandbox)
	if _, ok := out.(CaptureSuccess); ok {
		return out
	}
	return c.validatePayment(ctx, req, rc.Sandbox)
}

// HandleSessionExpired re-checks a payment the host reported as expired.
// A single validation, no re-poll: the trigger is already a terminal
// report, not a race on the redirect path.
func (c *Connector) HandleSessionExpired(ctx context.Context, sc StatusContext) Outcome {
	req, err := gateway.NewCaptureRequest(sc.Contract, sc.TransactionID)
	if err != nil {
		c.logger.Errorw("unable to handle the session expiration", "transaction_id", sc.TransactionID, "err", err)
		return Failure{Cause: CauseInvalidData}
	}
	return c.validatePayment(ctx, req, sc.Sandbox)
}

// validatePayment retrieves the payment, captures it if it is still only
// authorized, and reports the terminal state.
func (c *Connector) validatePayment(ctx context.Context, req gateway.CaptureRequest, sandbox bool) Outcome {
	resp, err := c.gateway.Retrieve(ctx, req, sandbox)
	if err != nil {
		c.logger.Errorw("unable to validate the payment", "payment_id", req.PaymentID(), "err", err)
		return Failure{Cause: CauseCommunicationError}
	}
	if resp.IsError() {
		return classifyError(resp)
	}

	if resp.Status == gateway.StatusAuthorized {
		resp, err = c.gateway.Capture(ctx, req, sandbox)
		if err != nil {
			c.logger.Errorw("unable to capture the payment", "payment_id", req.PaymentID(), "err", err)
			return Failure{Cause: CauseCommunicationError}
		}
		if resp.IsError() {
			return classifyError(resp)
		}
	}

	if resp.Status == gateway.StatusSuccess {
		return CaptureSuccess{
			TransactionID: resp.ID,
			CardSerial:    resp.FirstCardSerial(),
			ExpiryApprox:  time.Now().Format("2006-01"),
		}
	}
	return classifyStatus(resp.Status)
}

// RefundRequest runs the two-phase refund: a refund call that must come
// back refund_success, then the same body with capture set that must
// come back SUCCESS. A non-matching first leg stops the flow before the
// second call; any fault reports CANCEL against the original transaction
// and the host retries the whole refund.
func (c *Connector) RefundRequest(ctx context.Context, rc RefundContext) Outcome {
	req, err := gateway.NewRefundRequest(rc.Contract, gateway.Refund{
		TransactionID: rc.TransactionID,
		Amount:        rc.Amount,
		Currency:      rc.Currency,
		CustomerID:    rc.CustomerID,
	})
	if err != nil {
		c.logger.Errorw("unable to refund the payment", "transaction_id", rc.TransactionID, "err", err)
		return Failure{Cause: CauseCancel, TransactionID: rc.TransactionID}
	}

	resp, err := c.gateway.Refund(ctx, req, rc.Sandbox)
	if err != nil {
		c.logger.Errorw("unable to refund the payment", "transaction_id", rc.TransactionID, "err", err)
		return Failure{Cause: CauseCancel, TransactionID: rc.TransactionID}
	}
	if resp.IsError() {
		f := classifyError(resp)
		f.TransactionID = rc.TransactionID
		return f
	}
	if resp.Status != gateway.StatusRefundSuccess {
		return Failure{Cause: CausePartnerUnknownError, TransactionID: rc.TransactionID}
	}

	resp, err = c.gateway.Refund(ctx, req.WithCapture(true), rc.Sandbox)
	if err != nil {
		c.logger.Errorw("unable to settle the refund", "transaction_id", rc.TransactionID, "err", err)
		return Failure{Cause: CauseCancel, TransactionID: rc.TransactionID}
	}
	if resp.IsError() {
		f := classifyError(resp)
		f.TransactionID = rc.TransactionID
		return f
	}
	if resp.Status != gateway.StatusSuccess {
		return Failure{Cause: CausePartnerUnknownError, TransactionID: rc.TransactionID}
	}

	return RefundSuccess{TransactionID: rc.TransactionID}
}

// CanPartial reports whether partial refunds are supported.
func (c *Connector) CanPartial() bool { return false }

// CanMultiple reports whether a transaction can be refunded more than once.
func (c *Connector) CanMultiple() bool { return false }
