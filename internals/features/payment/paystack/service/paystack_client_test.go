package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edulevels_backend/internals/features/payment/paystack/dto"
)

func testClient(url string) *Client {
	return &Client{
		BaseURL:    url,
		SecretKey:  "sk_test_key",
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestInitializeTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_key" {
			t.Errorf("authorization header = %q", got)
		}

		var body dto.InitializeTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Email != "learner@example.com" || body.Amount != 5000 {
			t.Errorf("unexpected body: %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc",
				"access_code": "abc",
				"reference": "ref-1"
			}
		}`))
	}))
	defer srv.Close()

	data, err := testClient(srv.URL).InitializeTransaction(dto.InitializeTransactionRequest{
		Email:  "learner@example.com",
		Amount: 5000,
	})
	if err != nil {
		t.Fatalf("InitializeTransaction: %v", err)
	}
	if data.AuthorizationURL != "https://checkout.paystack.com/abc" || data.Reference != "ref-1" {
		t.Errorf("unexpected data: %+v", data)
	}
}

func TestVerifyTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref-9" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","reference":"ref-9","amount":5000}}`))
	}))
	defer srv.Close()

	data, err := testClient(srv.URL).VerifyTransaction("ref-9")
	if err != nil {
		t.Fatalf("VerifyTransaction: %v", err)
	}
	if data.Status != "success" || data.Amount != 5000 {
		t.Errorf("unexpected data: %+v", data)
	}
}

func TestGatewayErrorSurfacesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid amount"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).InitializeTransaction(dto.InitializeTransactionRequest{Email: "x@y.z", Amount: -1})
	var ge *GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("want GatewayError, got %v", err)
	}
	if ge.StatusCode != http.StatusBadRequest || ge.Message != "Invalid amount" {
		t.Errorf("got %d %q", ge.StatusCode, ge.Message)
	}
}

func TestNetworkErrorBecomesBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := testClient(srv.URL).VerifyTransaction("ref-1")
	var ge *GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("want GatewayError, got %v", err)
	}
	if ge.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", ge.StatusCode)
	}
}

func TestMalformedGatewayPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).VerifyTransaction("ref-1")
	var ge *GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("want GatewayError, got %v", err)
	}
	if ge.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", ge.StatusCode)
	}
}
