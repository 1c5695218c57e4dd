// Package summaryapi defines the public API contracts for the wallet transaction summary service.
package summaryapi

import (
	"context"
)

// SummaryRow is the flat, display-ready projection of one transaction summary.
// Nullable columns are nil when the summary carries no value for them.
type SummaryRow struct {
	ID                     string  `json:"id"`
	Value                  string  `json:"value"`
	Currency               string  `json:"currency"`
	IsIncoming             int     `json:"is_incoming"`
	Time                   int64   `json:"time"`
	Height                 int     `json:"height"`
	Confirmations          int     `json:"confirmations"`
	IsQueuedOutgoing       int     `json:"is_queued_outgoing"`
	RiskProfileLength      int     `json:"confirmation_risk_profile_length"`
	RiskProfileRbfRisk     *bool   `json:"confirmation_risk_profile_rbf_risk"`
	RiskProfileDoubleSpend *bool   `json:"confirmation_risk_profile_double_spend"`
	DestinationAddress     *string `json:"destination_address"`
	ToAddresses            string  `json:"to_addresses"`

	CanCancel      bool `json:"can_cancel"`
	HasAddressBook bool `json:"has_address_book"`
	HasDetails     bool `json:"has_details"`
	CanCoinapult   bool `json:"can_coinapult"`
}

// RiskProfile is the wire form of a local confirmation risk profile.
type RiskProfile struct {
	UnconfirmedChainLength int  `json:"unconfirmed_chain_length"`
	HasRbfRisk             bool `json:"has_rbf_risk"`
	IsDoubleSpend          bool `json:"is_double_spend"`
}

// SummarySnapshot is one transaction snapshot pushed by the sync collaborator.
// Currency may be empty, in which case the service default applies.
type SummarySnapshot struct {
	ID                      string       `json:"id"`
	Value                   string       `json:"value"`
	Currency                string       `json:"currency,omitempty"`
	IsIncoming              bool         `json:"is_incoming"`
	Time                    int64        `json:"time"`
	Height                  int          `json:"height"`
	Confirmations           int          `json:"confirmations"`
	IsQueuedOutgoing        bool         `json:"is_queued_outgoing"`
	ConfirmationRiskProfile *RiskProfile `json:"confirmation_risk_profile,omitempty"`
	DestinationAddress      *string      `json:"destination_address,omitempty"`
	ToAddresses             []string     `json:"to_addresses"`
}

// Service defines the surface offered to UI, reporting and sync collaborators.
type Service interface {
	// GetTransactionsSince returns the rows of an account with a time strictly after sinceMillis,
	// in display order.
	GetTransactionsSince(ctx context.Context, accountID string, sinceMillis int64) (rows []SummaryRow, err error)

	// GetTransaction returns the row of a single transaction.
	GetTransaction(ctx context.Context, accountID string, txid string) (row SummaryRow, err error)

	// RecordSnapshot parses and stores a snapshot, replacing older snapshots of the same transaction.
	RecordSnapshot(ctx context.Context, accountID string, snapshot SummarySnapshot) (err error)

	// Cancel drops a locally queued outgoing transaction.
	Cancel(ctx context.Context, accountID string, txid string) (err error)
}
