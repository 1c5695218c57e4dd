// Package application contains the core application service logic for wallet transaction summaries.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spv_wallet_summary/internal/config"
	"spv_wallet_summary/internal/core/domain"
	"spv_wallet_summary/internal/core/domain/repository"
	"spv_wallet_summary/internal/logger"
	"spv_wallet_summary/pkg/summaryapi"
)

var (
	// ErrInvalidAccountID indicates an empty account identifier.
	ErrInvalidAccountID = errors.New("account id cannot be empty")

	// ErrNotCancelable indicates that the transaction is not a locally queued send.
	ErrNotCancelable = errors.New("transaction cannot be cancelled")
)

// SummaryServiceImpl implements the summaryapi.Service interface on top of a summary repository.
type SummaryServiceImpl struct {
	repo            repository.TransactionSummaryRepository
	logger          logger.AppLogger
	maxRows         int
	defaultCurrency domain.Currency
}

// Compile-time check to ensure SummaryServiceImpl implements summaryapi.Service
var _ summaryapi.Service = (*SummaryServiceImpl)(nil)

// NewSummaryService creates a new instance of SummaryServiceImpl.
func NewSummaryService(
	repo repository.TransactionSummaryRepository,
	appLogger logger.AppLogger,
	cfg config.SummaryConfig,
) (*SummaryServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewSummaryService: appLogger is nil")
	}
	if repo == nil {
		appLogger.Error("NewSummaryService: repo is nil")
		return nil, errors.New("NewSummaryService: repo is nil")
	}
	if cfg.MaxRows < 0 {
		return nil, fmt.Errorf("NewSummaryService: max rows cannot be negative: %d", cfg.MaxRows)
	}
	defaultCurrency, err := domain.ParseCurrency(cfg.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("NewSummaryService: %w", err)
	}

	return &SummaryServiceImpl{
		repo:            repo,
		logger:          appLogger.With("component", "summary-service"),
		maxRows:         cfg.MaxRows,
		defaultCurrency: defaultCurrency,
	}, nil
}

// Record stores a snapshot produced by the sync layer, replacing any older snapshot
// of the same transaction.
func (s *SummaryServiceImpl) Record(ctx context.Context, accountID string, summary domain.TransactionSummary) error {
	accountID, err := normalizeAccountID(accountID)
	if err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, accountID, summary); err != nil {
		s.logger.Error("Failed to record transaction summary",
			"account", accountID,
			"txid", summary.TxID().String(),
			"error", err)
		return fmt.Errorf("failed to record summary: %w", err)
	}

	s.logger.Debug("Recorded transaction summary",
		"account", accountID,
		"txid", summary.TxID().String(),
		"confirmations", summary.Confirmations())
	return nil
}

// RecordSnapshot parses a snapshot received over the wire and records it.
func (s *SummaryServiceImpl) RecordSnapshot(
	ctx context.Context,
	accountID string,
	snapshot summaryapi.SummarySnapshot,
) error {
	summary, err := mapSnapshotToDomain(snapshot, s.defaultCurrency)
	if err != nil {
		s.logger.Warn("Rejected transaction snapshot", "account", accountID, "txid", snapshot.ID, "error", err)
		return fmt.Errorf("snapshot validation failed: %w", err)
	}
	return s.Record(ctx, accountID, summary)
}

// GetTransactionsSince returns the rows of summaries with a time after sinceMillis.
func (s *SummaryServiceImpl) GetTransactionsSince(
	ctx context.Context,
	accountID string,
	sinceMillis int64,
) ([]summaryapi.SummaryRow, error) {
	sinceSec := sinceMillis / 1000
	summaries, err := s.listSince(ctx, accountID, func(ts domain.TransactionSummary) bool {
		return ts.Time() > sinceSec
	})
	if err != nil {
		return nil, err
	}

	rows := make([]summaryapi.SummaryRow, 0, len(summaries))
	for _, ts := range summaries {
		rows = append(rows, mapDomainToSummaryRow(ts))
	}
	return rows, nil
}

// GetTransaction returns the row of one transaction.
func (s *SummaryServiceImpl) GetTransaction(
	ctx context.Context,
	accountID string,
	txidString string,
) (summaryapi.SummaryRow, error) {
	accountID, err := normalizeAccountID(accountID)
	if err != nil {
		return summaryapi.SummaryRow{}, err
	}
	txid, err := domain.NewTransactionID(txidString)
	if err != nil {
		return summaryapi.SummaryRow{}, fmt.Errorf("transaction id validation failed: %w", err)
	}

	ts, err := s.repo.Get(ctx, accountID, txid)
	if err != nil {
		return summaryapi.SummaryRow{}, fmt.Errorf("failed to get summary from repository: %w", err)
	}
	return mapDomainToSummaryRow(ts), nil
}

// Cancel drops a locally queued outgoing transaction from the account.
func (s *SummaryServiceImpl) Cancel(ctx context.Context, accountID string, txidString string) error {
	accountID, err := normalizeAccountID(accountID)
	if err != nil {
		return err
	}
	txid, err := domain.NewTransactionID(txidString)
	if err != nil {
		return fmt.Errorf("transaction id validation failed: %w", err)
	}

	loggerWithTx := s.logger.With("account", accountID, "txid", txid.String())

	ts, err := s.repo.Get(ctx, accountID, txid)
	if err != nil {
		return fmt.Errorf("failed to get summary from repository: %w", err)
	}
	if !ts.CanCancel() {
		loggerWithTx.Warn("Refusing to cancel transaction that is not queued locally")
		return fmt.Errorf("%w: %s", ErrNotCancelable, txid)
	}

	if err := s.repo.Delete(ctx, accountID, txid); err != nil {
		loggerWithTx.Error("Failed to delete queued transaction", "error", err)
		return fmt.Errorf("failed to delete summary from repository: %w", err)
	}

	loggerWithTx.Info("Cancelled queued outgoing transaction")
	return nil
}

// listSince loads, filters, sorts and truncates the account's summaries.
func (s *SummaryServiceImpl) listSince(
	ctx context.Context,
	accountID string,
	keep func(domain.TransactionSummary) bool,
) ([]domain.TransactionSummary, error) {
	accountID, err := normalizeAccountID(accountID)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.FindByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("Error fetching summaries for account", "account", accountID, "error", err)
		return nil, fmt.Errorf("failed to get summaries from repository: %w", err)
	}

	out := make([]domain.TransactionSummary, 0, len(all))
	for _, ts := range all {
		if keep(ts) {
			out = append(out, ts)
		}
	}

	domain.SortSummaries(out)
	if s.maxRows > 0 && len(out) > s.maxRows {
		out = out[:s.maxRows]
	}
	return out, nil
}

func normalizeAccountID(accountID string) (string, error) {
	trimmed := strings.TrimSpace(accountID)
	if trimmed == "" {
		return "", ErrInvalidAccountID
	}
	return trimmed, nil
}
