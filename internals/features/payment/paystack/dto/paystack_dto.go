package dto

import "encoding/json"

// ============================
// Gateway request/response DTOs
// ============================

type InitializeTransactionRequest struct {
	Email       string          `json:"email"`
	Amount      int             `json:"amount"` // smallest currency unit
	Reference   string          `json:"reference,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	CallbackURL string          `json:"callback_url,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

type InitializeTransactionData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyTransactionData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
}

// gatewayEnvelope is the common {status, message, data} wrapper Paystack uses.
type GatewayEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ============================
// Inbound API DTOs
// ============================

type InitializePaymentRequest struct {
	ModuleID    string `json:"module_id" validate:"required,uuid"`
	CallbackURL string `json:"callback_url" validate:"omitempty,url"`
}

type WebhookEvent struct {
	Event string                `json:"event"`
	Data  VerifyTransactionData `json:"data"`
}
