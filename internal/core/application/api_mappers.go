package application

import (
	"fmt"
	"strings"

	"github.com/samber/mo"

	"spv_wallet_summary/internal/core/domain"
	"spv_wallet_summary/pkg/summaryapi"
)

// noRiskProfileLength is reported as chain length when no risk profile is attached.
const noRiskProfileLength = -1

// mapDomainToSummaryRow converts an internal domain TransactionSummary to the public API row.
func mapDomainToSummaryRow(ts domain.TransactionSummary) summaryapi.SummaryRow {
	row := summaryapi.SummaryRow{
		ID:                ts.TxID().String(),
		Value:             ts.Value().PlainString(),
		Currency:          string(ts.Value().Currency()),
		IsIncoming:        boolToInt(ts.IsIncoming()),
		Time:              ts.Time(),
		Height:            ts.Height(),
		Confirmations:     ts.Confirmations(),
		IsQueuedOutgoing:  boolToInt(ts.IsQueuedOutgoing()),
		RiskProfileLength: noRiskProfileLength,
		ToAddresses:       joinAddresses(ts.ToAddresses()),
		CanCancel:         ts.CanCancel(),
		HasAddressBook:    ts.HasAddressBook(),
		HasDetails:        ts.HasDetails(),
		CanCoinapult:      ts.CanCoinapult(),
	}

	if risk, ok := ts.ConfirmationRiskProfile().Get(); ok {
		rbf := risk.HasRbfRisk()
		doubleSpend := risk.IsDoubleSpend()
		row.RiskProfileLength = risk.UnconfirmedChainLength()
		row.RiskProfileRbfRisk = &rbf
		row.RiskProfileDoubleSpend = &doubleSpend
	}
	if dest, ok := ts.DestinationAddress().Get(); ok {
		destStr := dest.String()
		row.DestinationAddress = &destStr
	}

	return row
}

func joinAddresses(addrs []domain.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// mapSnapshotToDomain parses a wire snapshot into a domain TransactionSummary.
// An empty currency falls back to defaultCurrency.
func mapSnapshotToDomain(
	snap summaryapi.SummarySnapshot,
	defaultCurrency domain.Currency,
) (domain.TransactionSummary, error) {
	txid, err := domain.NewTransactionID(snap.ID)
	if err != nil {
		return domain.TransactionSummary{}, err
	}

	currency := defaultCurrency
	if strings.TrimSpace(snap.Currency) != "" {
		currency, err = domain.ParseCurrency(snap.Currency)
		if err != nil {
			return domain.TransactionSummary{}, err
		}
	}

	value, err := domain.ParseCurrencyValue(snap.Value, currency)
	if err != nil {
		return domain.TransactionSummary{}, err
	}

	var risk *domain.ConfirmationRiskProfileLocal
	if rp := snap.ConfirmationRiskProfile; rp != nil {
		local := domain.NewConfirmationRiskProfileLocal(rp.UnconfirmedChainLength, rp.HasRbfRisk, rp.IsDoubleSpend)
		risk = &local
	}

	destination := mo.None[domain.Address]()
	if snap.DestinationAddress != nil {
		addr, err := domain.NewAddress(*snap.DestinationAddress)
		if err != nil {
			return domain.TransactionSummary{}, fmt.Errorf("destination address: %w", err)
		}
		destination = mo.Some(addr)
	}

	toAddresses := make([]domain.Address, 0, len(snap.ToAddresses))
	for i, raw := range snap.ToAddresses {
		addr, err := domain.NewAddress(raw)
		if err != nil {
			return domain.TransactionSummary{}, fmt.Errorf("to address %d: %w", i, err)
		}
		toAddresses = append(toAddresses, addr)
	}

	return domain.NewTransactionSummary(
		txid,
		value,
		snap.IsIncoming,
		snap.Time,
		snap.Height,
		snap.Confirmations,
		snap.IsQueuedOutgoing,
		risk,
		destination,
		toAddresses,
	), nil
}
