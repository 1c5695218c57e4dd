// Package summary provides an in-memory implementation of the TransactionSummaryRepository interface.
package summary

import (
	"context"
	"fmt"
	"sync"

	"spv_wallet_summary/internal/core/domain"
	"spv_wallet_summary/internal/core/domain/repository"
)

// InMemorySummaryRepo implements the TransactionSummaryRepository interface using in-memory storage.
type InMemorySummaryRepo struct {
	mu        sync.RWMutex
	summaries map[string]map[domain.TransactionID]domain.TransactionSummary
}

// Compile-time check to ensure InMemorySummaryRepo implements repository.TransactionSummaryRepository
var _ repository.TransactionSummaryRepository = (*InMemorySummaryRepo)(nil)

// NewInMemorySummaryRepo creates a new in-memory summary repository.
func NewInMemorySummaryRepo() *InMemorySummaryRepo {
	return &InMemorySummaryRepo{
		summaries: make(map[string]map[domain.TransactionID]domain.TransactionSummary),
	}
}

// Upsert stores the snapshot, overwriting an older snapshot of the same transaction.
func (r *InMemorySummaryRepo) Upsert(ctx context.Context, accountID string, s domain.TransactionSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.summaries[accountID]
	if !ok {
		account = make(map[domain.TransactionID]domain.TransactionSummary)
		r.summaries[accountID] = account
	}
	account[s.Key()] = s
	return nil
}

// FindByAccount returns a copy of all snapshots held for the account.
func (r *InMemorySummaryRepo) FindByAccount(ctx context.Context, accountID string) ([]domain.TransactionSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account := r.summaries[accountID]
	out := make([]domain.TransactionSummary, 0, len(account))
	for _, s := range account {
		out = append(out, s)
	}
	return out, nil
}

// Get returns the snapshot for one transaction.
func (r *InMemorySummaryRepo) Get(
	ctx context.Context,
	accountID string,
	txid domain.TransactionID,
) (domain.TransactionSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.TransactionSummary{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.summaries[accountID][txid]
	if !ok {
		return domain.TransactionSummary{}, fmt.Errorf("%w: account %s, tx %s", repository.ErrSummaryNotFound, accountID, txid)
	}
	return s, nil
}

// Delete drops the snapshot for one transaction.
func (r *InMemorySummaryRepo) Delete(ctx context.Context, accountID string, txid domain.TransactionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.summaries[accountID]
	if _, ok := account[txid]; !ok {
		return fmt.Errorf("%w: account %s, tx %s", repository.ErrSummaryNotFound, accountID, txid)
	}
	delete(account, txid)
	if len(account) == 0 {
		delete(r.summaries, accountID)
	}
	return nil
}
