package models

import (
	"time"
)

// Currency is one of the fixed set of currency codes a wallet can hold.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	NGN Currency = "NGN"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	GHS Currency = "GHS"
	BTC Currency = "BTC"
)

// SupportedCurrencies is the closed set of currencies a wallet carries a
// balance slot for. Order is the display order used by the dashboard.
var SupportedCurrencies = []Currency{USD, EUR, GBP, NGN, JPY, CAD, GHS, BTC}

// IsSupported reports whether c is one of the eight wallet currencies.
func (c Currency) IsSupported() bool {
	switch c {
	case USD, EUR, GBP, NGN, JPY, CAD, GHS, BTC:
		return true
	}
	return false
}

// Balances maps a currency code to the amount held in that slot.
type Balances map[Currency]float64

// ZeroBalances returns a balance record with every supported currency at 0.
func ZeroBalances() Balances {
	b := make(Balances, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		b[c] = 0
	}
	return b
}

// Clone returns an independent copy of the balance record. Wallet mutation
// is whole-object replacement, so callers copy before writing.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for c, v := range b {
		out[c] = v
	}
	return out
}

// Wallet represents a user's multi-currency wallet.
type Wallet struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Balances  Balances  `json:"balances"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionType defines the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionTransfer TransactionType = "transfer"
	TransactionSwap     TransactionType = "swap"
)

// Direction marks which side of a movement a transaction record is.
// Swap transactions are self-contained and carry no direction.
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Transaction is an append-only record of a ledger operation. Records are
// never mutated or deleted after creation.
type Transaction struct {
	Id            string          `json:"id"`
	Email         string          `json:"email"`
	WalletAddress string          `json:"wallet_address"`
	ToAddress     string          `json:"to_address,omitempty"`
	Amount        float64         `json:"amount"`
	Type          TransactionType `json:"type"`
	Direction     Direction       `json:"direction,omitempty"`
	Currency      Currency        `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}

// User identifies a wallet owner. Email is the only identity the
// dashboard tracks.
type User struct {
	Email string `json:"email"`
}

// ExchangeRateSnapshot is the latest rate table for a base currency.
// Replaced wholesale on each fetch; never merged across bases.
type ExchangeRateSnapshot struct {
	Base      Currency             `json:"base"`
	Rates     map[Currency]float64 `json:"rates"`
	Date      string               `json:"date"`
	Timestamp int64                `json:"timestamp"`
}

// RatePoint is one observation in a historical rate series.
type RatePoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// ConversionResult is the one-shot outcome of a conversion query.
type ConversionResult struct {
	From      Currency  `json:"from"`
	To        Currency  `json:"to"`
	Amount    float64   `json:"amount"`
	Rate      float64   `json:"rate"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorType classifies a normalized application error.
type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeAPI        ErrorType = "api"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// AppError is the normalized error record pushed to the diagnostic log.
// Retryable is informational metadata only; nothing retries automatically.
type AppError struct {
	Id        string            `json:"id"`
	Message   string            `json:"message"`
	Code      int               `json:"code,omitempty"`
	Type      ErrorType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Retryable bool              `json:"retryable"`
	Context   map[string]string `json:"context,omitempty"`
}
