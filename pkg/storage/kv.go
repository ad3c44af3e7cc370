package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/models"
)

// Collection keys in the underlying KV store.
const (
	walletsKey      = "wallets"
	transactionsKey = "transactions"
	usersKey        = "users"
)

// KVStorage implements the Storage interface over a localstore.KV,
// reproducing the mock ledger's persistence policy: every mutation rereads
// the whole collection, applies the change, and rewrites the entire blob.
// A missing or unparseable blob reads as an empty collection, never as an
// error — malformed persisted state is silently discarded.
type KVStorage struct {
	mu sync.Mutex
	kv localstore.KV
}

// Make sure we conform to the interface
var _ Storage = (*KVStorage)(nil)

// NewKVStorage creates a KVStorage over the given key-value backend.
func NewKVStorage(kv localstore.KV) *KVStorage {
	return &KVStorage{kv: kv}
}

// loadCollection reads and decodes a whole collection. Absent keys and
// corrupt payloads both yield the zero collection.
func loadCollection[T any](ctx context.Context, kv localstore.KV, key string) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func saveCollection[T any](ctx context.Context, kv localstore.KV, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// CreateWallet appends a new wallet and rewrites the wallets collection.
func (s *KVStorage) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := loadCollection[models.Wallet](ctx, s.kv, walletsKey)
	wallets = append(wallets, *wallet)
	if err := saveCollection(ctx, s.kv, walletsKey, wallets); err != nil {
		return nil, err
	}
	return wallet, nil
}

// GetWalletByEmail scans the wallets collection for the owning user.
func (s *KVStorage) GetWalletByEmail(ctx context.Context, email string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return findWallet(loadCollection[models.Wallet](ctx, s.kv, walletsKey), func(w models.Wallet) bool {
		return w.Email == email
	})
}

// GetWalletByAddress scans the wallets collection by wallet address.
func (s *KVStorage) GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return findWallet(loadCollection[models.Wallet](ctx, s.kv, walletsKey), func(w models.Wallet) bool {
		return w.Address == address
	})
}

func findWallet(wallets []models.Wallet, match func(models.Wallet) bool) (*models.Wallet, error) {
	for i := range wallets {
		if match(wallets[i]) {
			w := wallets[i]
			w.Balances = w.Balances.Clone()
			return &w, nil
		}
	}
	return nil, ErrWalletNotFound
}

// UpdateWallet replaces the stored record matching the wallet's address.
func (s *KVStorage) UpdateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := loadCollection[models.Wallet](ctx, s.kv, walletsKey)
	replaced := false
	for i := range wallets {
		if wallets[i].Address == wallet.Address {
			wallets[i] = *wallet
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, ErrWalletNotFound
	}
	if err := saveCollection(ctx, s.kv, walletsKey, wallets); err != nil {
		return nil, err
	}
	return wallet, nil
}

// ListWallets retrieves the full wallets collection.
func (s *KVStorage) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadCollection[models.Wallet](ctx, s.kv, walletsKey), nil
}

// AppendTransaction appends a record and rewrites the transaction log.
func (s *KVStorage) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := loadCollection[models.Transaction](ctx, s.kv, transactionsKey)
	transactions = append(transactions, *tx)
	return saveCollection(ctx, s.kv, transactionsKey, transactions)
}

// ListTransactionsByAddress filters the full log by wallet address,
// newest first.
func (s *KVStorage) ListTransactionsByAddress(ctx context.Context, address string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := loadCollection[models.Transaction](ctx, s.kv, transactionsKey)
	var matched []models.Transaction
	for _, tx := range all {
		if tx.WalletAddress == address {
			matched = append(matched, tx)
		}
	}
	// Reverse-chronological: the log is append-ordered.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched, nil
}

// CreateUser appends a user and rewrites the users collection.
func (s *KVStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := loadCollection[models.User](ctx, s.kv, usersKey)
	users = append(users, *user)
	return saveCollection(ctx, s.kv, usersKey, users)
}

// ListUsers retrieves the full users collection.
func (s *KVStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadCollection[models.User](ctx, s.kv, usersKey), nil
}

// IsNotFound reports whether err is the wallet-absent sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrWalletNotFound)
}
