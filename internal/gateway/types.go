package gateway

// Payment statuses as the gateway sends them. refund_success really is
// lower-case on the wire while the rest are not.
const (
	StatusInitiated        = "INITIATED"
	StatusAuthorized       = "AUTHORIZED"
	StatusSuccess          = "SUCCESS"
	StatusCanceledCustomer = "CANCELED_CUSTOMER"
	StatusCanceledMerchant = "CANCELED_MERCHANT"
	StatusExpired          = "EXPIRED"
	StatusRefundSuccess    = "refund_success"
)

// Error codes carried in the envelope's code field.
const (
	CodeInvalidAPIKey           = "invalid_api_key"
	CodeInvalidRequestParameter = "invalid_request_parameter"
	CodeInvalidRestriction      = "invalid_restriction"
)

// Values of the param field on invalid_request_parameter errors.
const (
	ParamKYCLevel = "kyc_level"
	ParamMinAge   = "min_age"
)

// ResponseRedirect is the redirect block the gateway returns on a freshly
// initiated payment; AuthURL is where the buyer goes next.
type ResponseRedirect struct {
	AuthURL    string `json:"auth_url"`
	SuccessURL string `json:"success_url,omitempty"`
	FailureURL string `json:"failure_url,omitempty"`
}

type CardDetail struct {
	Serial   string `json:"serial"`
	Type     string `json:"type,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// PaymentResponse is the uniform envelope every gateway endpoint answers
// with. A response is erroneous iff Code is non-empty; that single check
// is the branch point after every call.
type PaymentResponse struct {
	ID          string            `json:"id,omitempty"`
	Status      string            `json:"status,omitempty"`
	Redirect    *ResponseRedirect `json:"redirect,omitempty"`
	CardDetails []CardDetail      `json:"card_details,omitempty"`

	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Number  int    `json:"number,omitempty"`
	Param   string `json:"param,omitempty"`
}

func (r PaymentResponse) IsError() bool { return r.Code != "" }

func (r PaymentResponse) RedirectURL() string {
	if r.Redirect == nil {
		return ""
	}
	return r.Redirect.AuthURL
}

// FirstCardSerial returns the serial of the first card detail, which is
// the one the gateway settles a capture against.
func (r PaymentResponse) FirstCardSerial() string {
	if len(r.CardDetails) == 0 {
		return ""
	}
	return r.CardDetails[0].Serial
}
