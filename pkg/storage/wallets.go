package storage

import (
	"context"

	"github.com/tobenna/walletdash/pkg/models"
)

// WalletStore defines the interface for managing wallets.
type WalletStore interface {
	// CreateWallet appends a new wallet to the collection.
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// GetWalletByEmail retrieves a wallet by its owning user's email.
	GetWalletByEmail(ctx context.Context, email string) (*models.Wallet, error)

	// GetWalletByAddress retrieves a wallet by its wallet address.
	GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error)

	// UpdateWallet replaces the stored wallet record matching the given
	// wallet's address. The whole record is overwritten.
	UpdateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// ListWallets retrieves all wallets from the storage.
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}
