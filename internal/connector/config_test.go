package connector

import (
	"context"
	"testing"

	"cardlink/internal/gateway"
)

func TestGetParameters(t *testing.T) {
	c := newTestConnector(&stubGateway{})

	params := c.GetParameters("en")
	if len(params) != 7 {
		t.Fatalf("parameter count = %d, want 7", len(params))
	}

	required := 0
	byKey := map[string]Parameter{}
	for _, p := range params {
		byKey[p.Key] = p
		if p.Required {
			required++
		}
		if p.Label == "" || p.Description == "" {
			t.Errorf("parameter %s has a blank label or description", p.Key)
		}
	}
	if required != 3 {
		t.Fatalf("required parameters = %d, want 3", required)
	}

	kyc := byKey[FieldKYCLevel]
	if kyc.Kind != ParameterListBox || len(kyc.Values) != 2 {
		t.Fatalf("kyc parameter = %+v", kyc)
	}
	if byKey[FieldAuthorizationKey].Kind != ParameterPassword {
		t.Fatal("authorization key is not a secret parameter")
	}
}

func TestGetParametersLocalized(t *testing.T) {
	c := newTestConnector(&stubGateway{})

	en := c.GetParameters("en-US")[0].Label
	fr := c.GetParameters("fr-FR")[0].Label
	if en == fr {
		t.Fatalf("fr label not localized: %q", fr)
	}

	// unsupported locales fall back to English
	if got := c.GetParameters("ja-JP")[0].Label; got != en {
		t.Fatalf("fallback label = %q, want %q", got, en)
	}
}

func TestGetName(t *testing.T) {
	c := newTestConnector(&stubGateway{})
	if c.GetName("en") == "" {
		t.Fatal("connector name is empty")
	}
}

func TestCheckConfigurationBadMinAge(t *testing.T) {
	g := &stubGateway{}
	c := newTestConnector(g)

	contract := testContract()
	contract.MinAge = "abc"

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: contract, Sandbox: true})
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want exactly one", errs)
	}
	if errs[FieldMinAge] == "" {
		t.Fatalf("no message keyed to the min-age field: %v", errs)
	}
	if g.initiateCalls != 0 {
		t.Fatal("live probe ran despite syntactic errors")
	}
}

func TestCheckConfigurationNegativeMinAge(t *testing.T) {
	c := newTestConnector(&stubGateway{})

	contract := testContract()
	contract.MinAge = "-3"

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: contract})
	if errs[FieldMinAge] == "" {
		t.Fatalf("negative age accepted: %v", errs)
	}
}

func TestCheckConfigurationBadCountry(t *testing.T) {
	c := newTestConnector(&stubGateway{})

	contract := testContract()
	contract.CountryRestriction = "foo"

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: contract})
	if len(errs) != 1 || errs[FieldCountryRestriction] == "" {
		t.Fatalf("errors = %v, want one keyed to the country restriction", errs)
	}
}

func TestCheckConfigurationGood(t *testing.T) {
	g := &stubGateway{initiate: []step{{resp: gateway.PaymentResponse{
		ID:       "pay_1",
		Status:   gateway.StatusInitiated,
		Redirect: &gateway.ResponseRedirect{AuthURL: "https://gateway.example/auth/pay_1"},
	}}}}
	c := newTestConnector(g)

	contract := testContract()
	contract.MinAge = "18"
	contract.CountryRestriction = "FR"
	contract.KYCLevel = KYCLevelFull

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: contract, Sandbox: true})
	if len(errs) != 0 {
		t.Fatalf("errors = %v, want none", errs)
	}
	if g.initiateCalls != 1 {
		t.Fatalf("initiate calls = %d, want exactly one live probe", g.initiateCalls)
	}
}

func TestCheckConfigurationBadCredential(t *testing.T) {
	g := &stubGateway{initiate: []step{{resp: gateway.PaymentResponse{
		Code:    gateway.CodeInvalidAPIKey,
		Message: "Authentication failed",
	}}}}
	c := newTestConnector(g)

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: testContract(), Sandbox: true})
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want exactly one", errs)
	}
	if errs[FieldAuthorizationKey] == "" {
		t.Fatalf("error not keyed to the authorization key: %v", errs)
	}
}

func TestCheckConfigurationTransportFailure(t *testing.T) {
	g := &stubGateway{initiate: []step{{err: gateway.ErrCommunication}}}
	c := newTestConnector(g)

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: testContract(), Sandbox: true})
	if len(errs) != 1 || errs[FieldGeneric] == "" {
		t.Fatalf("errors = %v, want one generic entry", errs)
	}
}

func TestCheckConfigurationMissingCredential(t *testing.T) {
	g := &stubGateway{}
	c := newTestConnector(g)

	errs := c.CheckConfiguration(context.Background(), CheckRequest{Contract: gateway.Contract{MerchantID: "mid-42"}})
	if len(errs) != 1 || errs[FieldGeneric] == "" {
		t.Fatalf("errors = %v, want one generic entry", errs)
	}
	if g.initiateCalls != 0 {
		t.Fatal("live probe ran without a credential")
	}
}
