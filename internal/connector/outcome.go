package connector

// FailureCause is the closed set of non-success causes the host
// understands.
type FailureCause string

const (
	CauseCancel              FailureCause = "CANCEL"
	CauseSessionExpired      FailureCause = "SESSION_EXPIRED"
	CauseInvalidData         FailureCause = "INVALID_DATA"
	CauseCommunicationError  FailureCause = "COMMUNICATION_ERROR"
	CauseInternalError       FailureCause = "INTERNAL_ERROR"
	CausePartnerUnknownError FailureCause = "PARTNER_UNKNOWN_ERROR"
)

// Outcome is the only value handed back across the connector boundary;
// the host never sees a raw gateway response or an unhandled error.
type Outcome interface {
	outcome()
}

// Redirect tells the host to send the buyer to the gateway and resume
// later with the token.
type Redirect struct {
	URL         string `json:"url"`
	ResumeToken string `json:"resume_token"`
	Status      string `json:"status"`
}

// CaptureSuccess reports a fully captured payment.
type CaptureSuccess struct {
	TransactionID string `json:"transaction_id"`
	CardSerial    string `json:"card_serial"`
	// ExpiryApprox is the current month, not gateway data: the gateway
	// omits the real expiration date.
	ExpiryApprox string `json:"expiry_approx"`
}

type RefundSuccess struct {
	TransactionID string `json:"transaction_id"`
}

type Failure struct {
	Cause         FailureCause `json:"cause"`
	Field         string       `json:"field,omitempty"`
	Message       string       `json:"message,omitempty"`
	TransactionID string       `json:"transaction_id,omitempty"`
}

func (Redirect) outcome()       {}
func (CaptureSuccess) outcome() {}
func (RefundSuccess) outcome()  {}
func (Failure) outcome()        {}
