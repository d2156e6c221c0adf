package connector

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"cardlink/internal/gateway"
	"cardlink/internal/locale"
)

// KYC levels the gateway accepts.
const (
	KYCLevelSimple = "SIMPLE"
	KYCLevelFull   = "FULL"
)

type ParameterKind string

const (
	ParameterInput    ParameterKind = "input"
	ParameterPassword ParameterKind = "password"
	ParameterListBox  ParameterKind = "listbox"
)

// Parameter describes one merchant configuration field for the host's
// setup UI.
type Parameter struct {
	Key         string            `json:"key"`
	Kind        ParameterKind     `json:"kind"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Required    bool              `json:"required"`
	Values      map[string]string `json:"values,omitempty"`
}

// CheckRequest carries the merchant settings under review and the
// environment to probe them against.
type CheckRequest struct {
	Contract gateway.Contract
	Sandbox  bool
	Locale   string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// contractSettings holds the two syntactically checkable fields. number
// rejects anything but an unsigned integer string, which covers the
// non-negative requirement.
type contractSettings struct {
	MinAge             string `validate:"omitempty,number"`
	CountryRestriction string `validate:"omitempty,iso3166_1_alpha2"`
}

// GetParameters returns the merchant configuration catalog, localized.
func (c *Connector) GetParameters(loc string) []Parameter {
	t := locale.For(loc)
	return []Parameter{
		{Key: FieldMerchantName, Kind: ParameterInput, Label: t("contract.merchant_name.label"), Description: t("contract.merchant_name.description"), Required: true},
		{Key: FieldMerchantID, Kind: ParameterInput, Label: t("contract.merchant_id.label"), Description: t("contract.merchant_id.description"), Required: true},
		{Key: FieldAuthorizationKey, Kind: ParameterPassword, Label: t("contract.authorization_key.label"), Description: t("contract.authorization_key.description"), Required: true},
		{Key: FieldSettlementKey, Kind: ParameterPassword, Label: t("contract.settlement_key.label"), Description: t("contract.settlement_key.description"), Required: false},
		{Key: FieldMinAge, Kind: ParameterInput, Label: t("contract.min_age.label"), Description: t("contract.min_age.description"), Required: false},
		{Key: FieldKYCLevel, Kind: ParameterListBox, Label: t("contract.kyc_level.label"), Description: t("contract.kyc_level.description"), Required: false, Values: map[string]string{
			KYCLevelSimple: t("contract.kyc_level.simple"),
			KYCLevelFull:   t("contract.kyc_level.full"),
		}},
		{Key: FieldCountryRestriction, Kind: ParameterInput, Label: t("contract.country_restriction.label"), Description: t("contract.country_restriction.description"), Required: false},
	}
}

// GetName returns the localized connector name.
func (c *Connector) GetName(loc string) string {
	return locale.For(loc)("connector.name")
}

// CheckConfiguration validates the merchant settings. Syntax first; only
// when the settings are clean does it probe the gateway with one live
// initiate and fold any classified error into the same field→message
// map. Nothing is ever thrown past this boundary.
func (c *Connector) CheckConfiguration(ctx context.Context, req CheckRequest) map[string]string {
	errs := make(map[string]string)
	t := locale.For(req.Locale)

	settings := contractSettings{
		MinAge:             req.Contract.MinAge,
		CountryRestriction: req.Contract.CountryRestriction,
	}
	if err := validate.Struct(settings); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "MinAge":
					errs[FieldMinAge] = t("contract.min_age.invalid")
				case "CountryRestriction":
					errs[FieldCountryRestriction] = t("contract.country_restriction.invalid")
				}
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}

	probe, err := gateway.NewInitiateRequest(req.Contract, checkPayment())
	if err != nil {
		c.logger.Errorw("unable to check the connection", "err", err)
		errs[FieldGeneric] = err.Error()
		return errs
	}

	resp, err := c.gateway.Initiate(ctx, probe, req.Sandbox)
	if err != nil {
		c.logger.Errorw("unable to check the connection", "err", err)
		errs[FieldGeneric] = err.Error()
		return errs
	}
	if resp.IsError() {
		f := classifyError(resp)
		errs[f.Field] = f.Message
	}
	return errs
}

// checkPayment is the throwaway payment used for the live probe; the
// session is never redirected to, so it simply expires on the gateway.
func checkPayment() gateway.Payment {
	return gateway.Payment{
		OrderID:    "configuration-check",
		Amount:     "0.01",
		Currency:   "EUR",
		CustomerID: "configuration-check",
	}
}
