// Package repository defines interfaces for data storage and retrieval operations.
//
//go:generate mockery --name=TransactionSummaryRepository --output=../../application/mocks/mock_repository --outpkg=mock_repository
package repository

import (
	"context"
	"errors"

	"spv_wallet_summary/internal/core/domain"
)

// ErrSummaryNotFound indicates that no summary is held for the requested transaction.
var ErrSummaryNotFound = errors.New("transaction summary not found")

// TransactionSummaryRepository holds the latest summary snapshot per account and transaction.
type TransactionSummaryRepository interface {
	// Upsert stores the snapshot, replacing any snapshot with the same transaction id.
	Upsert(ctx context.Context, accountID string, summary domain.TransactionSummary) error

	// FindByAccount returns every snapshot held for the account, in no particular order.
	FindByAccount(ctx context.Context, accountID string) ([]domain.TransactionSummary, error)

	// Get returns the snapshot for one transaction or ErrSummaryNotFound.
	Get(ctx context.Context, accountID string, txid domain.TransactionID) (domain.TransactionSummary, error)

	// Delete drops the snapshot for one transaction or returns ErrSummaryNotFound.
	Delete(ctx context.Context, accountID string, txid domain.TransactionID) error
}
