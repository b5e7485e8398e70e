package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"edulevels_backend/internals/configs"
	"edulevels_backend/internals/features/payment/paystack/dto"
)

// GatewayError carries the gateway's own HTTP status and message so the
// controller can surface them unchanged.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("paystack: %d %s", e.StatusCode, e.Message)
}

// Client talks to the Paystack REST API. BaseURL is injectable so tests can
// point it at a local server.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    configs.PaystackBaseURL,
		SecretKey:  configs.PaystackSecretKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// InitializeTransaction starts a charge and returns the hosted checkout URL.
// Single attempt; the caller decides whether to retry.
func (p *Client) InitializeTransaction(req dto.InitializeTransactionRequest) (*dto.InitializeTransactionData, error) {
	var data dto.InitializeTransactionData
	if err := p.call(http.MethodPost, "/transaction/initialize", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyTransaction fetches the final state of a charge by its reference.
func (p *Client) VerifyTransaction(reference string) (*dto.VerifyTransactionData, error) {
	var data dto.VerifyTransactionData
	if err := p.call(http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (p *Client) call(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, p.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return &GatewayError{StatusCode: http.StatusBadGateway, Message: "Payment gateway unreachable"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{StatusCode: http.StatusBadGateway, Message: "Failed to read gateway response"}
	}

	var envelope dto.GatewayEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &GatewayError{StatusCode: http.StatusBadGateway, Message: "Malformed gateway response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := envelope.Message
		if msg == "" {
			msg = "Payment gateway error"
		}
		return &GatewayError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &GatewayError{StatusCode: http.StatusBadGateway, Message: "Malformed gateway payload"}
		}
	}
	return nil
}
