package storage

import (
	"context"

	"github.com/tobenna/walletdash/pkg/models"
)

// TransactionStore defines the interface for the append-only transaction log.
type TransactionStore interface {
	// AppendTransaction appends a transaction record. Records are never
	// updated or deleted once written.
	AppendTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactionsByAddress retrieves all transactions recorded
	// against the given wallet address, newest first.
	ListTransactionsByAddress(ctx context.Context, address string) ([]models.Transaction, error)
}
