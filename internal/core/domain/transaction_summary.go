package domain

import (
	"slices"

	"github.com/samber/mo"
)

// TransactionSummary is an immutable snapshot of one wallet transaction as shown to the user.
// A transaction is usually represented by several snapshots over time, one per
// confirmation count; all of them are Equals to each other.
type TransactionSummary struct {
	txid                    TransactionID
	value                   CurrencyValue
	isIncoming              bool
	time                    int64
	height                  int
	confirmations           int
	isQueuedOutgoing        bool
	confirmationRiskProfile mo.Option[ConfirmationRiskProfileLocal]
	destinationAddress      mo.Option[Address]
	toAddresses             []Address
}

// NewTransactionSummary assembles a summary from values computed by the sync layer.
// Nothing is validated. A nil riskProfile is stored as an absent option.
func NewTransactionSummary(
	txid TransactionID,
	value CurrencyValue,
	isIncoming bool,
	time int64,
	height int,
	confirmations int,
	isQueuedOutgoing bool,
	riskProfile *ConfirmationRiskProfileLocal,
	destinationAddress mo.Option[Address],
	toAddresses []Address,
) TransactionSummary {
	risk := mo.None[ConfirmationRiskProfileLocal]()
	if riskProfile != nil {
		risk = mo.Some(*riskProfile)
	}

	return TransactionSummary{
		txid:                    txid,
		value:                   value,
		isIncoming:              isIncoming,
		time:                    time,
		height:                  height,
		confirmations:           confirmations,
		isQueuedOutgoing:        isQueuedOutgoing,
		confirmationRiskProfile: risk,
		destinationAddress:      destinationAddress,
		toAddresses:             slices.Clone(toAddresses),
	}
}

// TxID returns the transaction identifier.
func (s TransactionSummary) TxID() TransactionID { return s.txid }

// Value returns the net effect of the transaction on the wallet.
func (s TransactionSummary) Value() CurrencyValue { return s.value }

// IsIncoming reports whether funds flow into the wallet.
func (s TransactionSummary) IsIncoming() bool { return s.isIncoming }

// Time returns the transaction time in unix seconds.
func (s TransactionSummary) Time() int64 { return s.time }

// Height returns the inclusion height as reported by the sync layer.
func (s TransactionSummary) Height() int { return s.height }

// Confirmations returns the confirmation depth; 0 means unconfirmed.
func (s TransactionSummary) Confirmations() int { return s.confirmations }

// IsQueuedOutgoing reports whether this is a locally queued send.
func (s TransactionSummary) IsQueuedOutgoing() bool { return s.isQueuedOutgoing }

// ConfirmationRiskProfile returns the risk assessment, if any.
func (s TransactionSummary) ConfirmationRiskProfile() mo.Option[ConfirmationRiskProfileLocal] {
	return s.confirmationRiskProfile
}

// HasConfirmationRiskProfile reports whether a risk assessment is attached.
func (s TransactionSummary) HasConfirmationRiskProfile() bool {
	return s.confirmationRiskProfile.IsPresent()
}

// DestinationAddress returns the single resolvable recipient, if any.
func (s TransactionSummary) DestinationAddress() mo.Option[Address] {
	return s.destinationAddress
}

// ToAddresses returns a copy of all output addresses in output order.
func (s TransactionSummary) ToAddresses() []Address {
	return slices.Clone(s.toAddresses)
}

// Key returns the identity of the summary, suitable as a map key.
func (s TransactionSummary) Key() TransactionID {
	return s.txid
}

// Equals compares summaries by transaction id only.
func (s TransactionSummary) Equals(other TransactionSummary) bool {
	return s.txid.Equals(other.txid)
}

// Compare orders s relative to other, see CompareSummaries.
func (s TransactionSummary) Compare(other TransactionSummary) int {
	return CompareSummaries(s, other)
}

// CanCancel reports whether the summary is a locally queued send that may still be dropped.
func (s TransactionSummary) CanCancel() bool {
	return s.isQueuedOutgoing
}

// HasAddressBook reports whether a destination address is known.
func (s TransactionSummary) HasAddressBook() bool {
	return s.destinationAddress.IsPresent()
}

// HasDetails is always true.
func (s TransactionSummary) HasDetails() bool {
	return true
}

// CanCoinapult is always false; the Coinapult integration is disabled.
func (s TransactionSummary) CanCoinapult() bool {
	return false
}
