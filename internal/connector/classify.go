package connector

import "cardlink/internal/gateway"

// Field keys the host renders configuration errors against.
const (
	FieldMerchantName       = "merchant_name"
	FieldMerchantID         = "merchant_id"
	FieldAuthorizationKey   = "authorization_key"
	FieldSettlementKey      = "settlement_key"
	FieldMinAge             = "min_age"
	FieldKYCLevel           = "kyc_level"
	FieldCountryRestriction = "country_restriction"

	// FieldGeneric collects errors that belong to no single field.
	FieldGeneric = "GENERIC_ERROR"
)

// classifyError maps an erroneous gateway response onto a Failure.
// First match wins; any other non-empty code is the partner's problem.
func classifyError(resp gateway.PaymentResponse) Failure {
	switch {
	case resp.Code == gateway.CodeInvalidAPIKey:
		return Failure{Cause: CauseInvalidData, Field: FieldAuthorizationKey, Message: resp.Message}
	case resp.Code == gateway.CodeInvalidRequestParameter && resp.Param == gateway.ParamKYCLevel:
		return Failure{Cause: CauseInvalidData, Field: FieldKYCLevel, Message: resp.Message}
	case resp.Code == gateway.CodeInvalidRequestParameter && resp.Param == gateway.ParamMinAge:
		return Failure{Cause: CauseInvalidData, Field: FieldMinAge, Message: resp.Message}
	case resp.Code == gateway.CodeInvalidRestriction:
		return Failure{Cause: CauseInvalidData, Field: FieldCountryRestriction, Message: resp.Message}
	default:
		return Failure{Cause: CausePartnerUnknownError, Field: FieldGeneric, Message: resp.Message}
	}
}

// classifyStatus maps a terminal gateway status, with no error code
// present, onto a Failure cause.
func classifyStatus(status string) Failure {
	switch status {
	case gateway.StatusCanceledCustomer, gateway.StatusCanceledMerchant:
		return Failure{Cause: CauseCancel}
	case gateway.StatusExpired:
		return Failure{Cause: CauseSessionExpired}
	default:
		return Failure{Cause: CausePartnerUnknownError}
	}
}
