// Package restapi implements the RESTful API layer, including DTOs and handlers.
package restapi

import "spv_wallet_summary/pkg/summaryapi"

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetTransactionsResponse defines the structure for the GET /accounts/{account}/transactions endpoint.
type GetTransactionsResponse struct {
	Account      string                  `json:"account"`
	Since        int64                   `json:"since"`
	Count        int                     `json:"count"`
	Transactions []summaryapi.SummaryRow `json:"transactions"`
}

// CancelResponse defines the structure for the DELETE /accounts/{account}/transactions/{txid} endpoint response.
type CancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
