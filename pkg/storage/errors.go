package storage

import "errors"

// ErrWalletNotFound is returned when no wallet matches the given email or address.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrUnsupportedCurrency is returned when a currency is outside the fixed wallet set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrInsufficientFunds is returned when a wallet has an insufficient balance for a transaction.
var ErrInsufficientFunds = errors.New("insufficient funds")
