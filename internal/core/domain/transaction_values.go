package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

// ErrInvalidTransactionIDFormat indicates invalid transaction id format.
var ErrInvalidTransactionIDFormat = errors.New("invalid transaction id format")

// Transaction ids are rendered as 64 hex characters in display (byte-reversed) order.
var txIDRegex = regexp.MustCompile("^[0-9a-f]{64}$")

// TransactionID is the 256-bit transaction hash that identifies a summary.
// It is comparable and can be used directly as a map key.
type TransactionID struct {
	hash chainhash.Hash
}

// NewTransactionID parses a transaction id from its display hex form.
func NewTransactionID(hexID string) (TransactionID, error) {
	cleanID := strings.ToLower(strings.TrimSpace(hexID))
	if !txIDRegex.MatchString(cleanID) {
		return TransactionID{}, fmt.Errorf("%w: %s", ErrInvalidTransactionIDFormat, hexID)
	}

	h, err := chainhash.NewHashFromHex(cleanID)
	if err != nil {
		return TransactionID{}, fmt.Errorf("%w: %s: %v", ErrInvalidTransactionIDFormat, hexID, err)
	}
	return TransactionID{hash: *h}, nil
}

// TransactionIDFromHash wraps a hash produced by the chain layer.
func TransactionIDFromHash(h chainhash.Hash) TransactionID {
	return TransactionID{hash: h}
}

// Hash returns the underlying chain hash.
func (id TransactionID) Hash() chainhash.Hash {
	return id.hash
}

// String returns the display hex form of the transaction id.
func (id TransactionID) String() string {
	return id.hash.String()
}

// IsZero checks if the TransactionID is the all-zero hash.
func (id TransactionID) IsZero() bool {
	return id.hash == chainhash.Hash{}
}

// Equals checks if two TransactionID objects are equal.
func (id TransactionID) Equals(other TransactionID) bool {
	return id.hash.IsEqual(&other.hash)
}
