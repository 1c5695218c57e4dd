package domain

import (
	"cmp"
	"slices"
)

// CompareSummaries orders summaries for display. It returns a negative number when a
// sorts before b:
//   - fewer confirmations first,
//   - then non-queued before locally queued outgoing,
//   - then earlier time first.
//
// The order is not consistent with Equals. Two different transactions with the same
// confirmations, queue status and time compare as 0, and two snapshots of the same
// transaction with different confirmations do not.
func CompareSummaries(a, b TransactionSummary) int {
	if c := cmp.Compare(a.confirmations, b.confirmations); c != 0 {
		return c
	}
	if a.isQueuedOutgoing != b.isQueuedOutgoing {
		if a.isQueuedOutgoing {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.time, b.time)
}

// SortSummaries sorts summaries in place. Order-equal summaries keep their relative order.
func SortSummaries(summaries []TransactionSummary) {
	slices.SortStableFunc(summaries, CompareSummaries)
}
