package gateway

import (
	"encoding/base64"
	"errors"
	"testing"
)

func validContract() Contract {
	return Contract{
		MerchantName:     "Test Shop",
		MerchantID:       "mid-42",
		AuthorizationKey: "psc_R7OSP6jvuJYRjJ5JHzGquuKm9f8PLHZ",
		MinAge:           "18",
		KYCLevel:         "FULL",
	}
}

func TestBuildersRequireCredential(t *testing.T) {
	missing := Contract{MerchantID: "mid-42"}

	t.Run("initiate", func(t *testing.T) {
		_, err := NewInitiateRequest(missing, Payment{OrderID: "order-1"})
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
	})

	t.Run("capture", func(t *testing.T) {
		_, err := NewCaptureRequest(missing, "pay_1")
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
	})

	t.Run("refund", func(t *testing.T) {
		_, err := NewRefundRequest(missing, Refund{TransactionID: "pay_1"})
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
	})
}

func TestAuthenticationHeader(t *testing.T) {
	c := validContract()
	req, err := NewCaptureRequest(c, "pay_1")
	if err != nil {
		t.Fatal(err)
	}

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte(c.AuthorizationKey))
	if got := req.AuthenticationHeader(); got != want {
		t.Fatalf("auth header = %q, want %q", got, want)
	}
}

func TestEncodeToBase64NeverFails(t *testing.T) {
	if got := encodeToBase64(""); got != "" {
		t.Fatalf("empty input encoded to %q", got)
	}
}

func TestInitiateRequestCarriesContractRestrictions(t *testing.T) {
	req, err := NewInitiateRequest(validContract(), Payment{
		OrderID:    "order-1",
		Amount:     "25.00",
		Currency:   "EUR",
		CustomerID: "cust-7",
		SuccessURL: "https://shop.example/ok",
		FailureURL: "https://shop.example/ko",
	})
	if err != nil {
		t.Fatal(err)
	}

	if req.Customer.MinAge != "18" || req.Customer.KYCLevel != "FULL" {
		t.Fatalf("customer restrictions not taken from contract: %+v", req.Customer)
	}
	if req.MerchantID != "mid-42" {
		t.Fatalf("merchant id = %q", req.MerchantID)
	}
	if req.Redirect.SuccessURL != "https://shop.example/ok" {
		t.Fatalf("success url = %q", req.Redirect.SuccessURL)
	}
}

func TestWithCaptureReturnsDistinctValue(t *testing.T) {
	first, err := NewRefundRequest(validContract(), Refund{
		TransactionID: "pay_9",
		Amount:        "25.00",
		Currency:      "EUR",
	})
	if err != nil {
		t.Fatal(err)
	}

	second := first.WithCapture(true)

	if first.Capture {
		t.Fatal("first leg request was mutated")
	}
	if !second.Capture {
		t.Fatal("second leg request has no capture flag")
	}
	if second.PaymentID() != first.PaymentID() {
		t.Fatalf("payment id changed: %q vs %q", second.PaymentID(), first.PaymentID())
	}
	if second.AuthenticationHeader() != first.AuthenticationHeader() {
		t.Fatal("auth header changed between legs")
	}
}
