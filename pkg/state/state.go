package state

import (
	"github.com/tobenna/walletdash/pkg/models"
)

// WalletOpKind identifies one of the wallet-mutating operation kinds whose
// in-flight status the wallet slice tracks.
type WalletOpKind string

const (
	WalletOpCreate   WalletOpKind = "create"
	WalletOpFetch    WalletOpKind = "fetch"
	WalletOpDeposit  WalletOpKind = "deposit"
	WalletOpTransfer WalletOpKind = "transfer"
	WalletOpSwap     WalletOpKind = "swap"
)

// OpPhase is the lifecycle phase of an in-flight wallet operation.
// Success returns the operation to Idle with its data applied; Failed
// holds until a clear intent or a fresh request of the same kind.
type OpPhase int

const (
	PhaseIdle OpPhase = iota
	PhasePending
	PhaseFailed
)

// OpStatus is the tagged status of one operation kind. The zero value is
// an idle operation with no error.
type OpStatus struct {
	Phase OpPhase
	Err   string
}

// UserState is the single-slot session: one active user at a time.
type UserState struct {
	Email string `json:"email"`
}

// WalletState holds the wallet record plus per-operation-kind status.
type WalletState struct {
	Wallet *models.Wallet
	Ops    map[WalletOpKind]OpStatus
}

// DefaultPageSize is the client-side transaction page size.
const DefaultPageSize = 20

// TransactionState holds the fully-fetched transaction list and the
// client-side paging cursor over it.
type TransactionState struct {
	Items    []models.Transaction
	Total    int
	Page     int
	PageSize int
	HasMore  bool
	Loading  bool
	Err      string
}

// RatesState layers per-concern loading and error fields over the three
// FX data fields. Each fetch kind touches only its own trio.
type RatesState struct {
	Latest     *models.ExchangeRateSnapshot
	Historical []models.RatePoint
	Conversion *models.ConversionResult

	LoadingRates      bool
	LoadingHistorical bool
	LoadingConversion bool

	RatesErr      string
	HistoricalErr string
	ConversionErr string
}

// MaxErrorLog bounds the diagnostic error ring buffer.
const MaxErrorLog = 10

// ErrorsState is the bounded diagnostic log, newest first.
type ErrorsState struct {
	Items []models.AppError
}

// AppState is the full application state tree.
type AppState struct {
	User         UserState
	Wallet       WalletState
	Transactions TransactionState
	Rates        RatesState
	Errors       ErrorsState
}

// InitialState returns the state tree before any dispatch.
func InitialState() AppState {
	return AppState{
		Wallet:       WalletState{Ops: map[WalletOpKind]OpStatus{}},
		Transactions: initialTransactionState(),
	}
}

func initialTransactionState() TransactionState {
	return TransactionState{PageSize: DefaultPageSize}
}

// rootReduce applies every slice reducer to the dispatched action.
func rootReduce(s AppState, a Action) AppState {
	return AppState{
		User:         reduceUser(s.User, a),
		Wallet:       reduceWallet(s.Wallet, a),
		Transactions: reduceTransactions(s.Transactions, a),
		Rates:        reduceRates(s.Rates, a),
		Errors:       reduceErrors(s.Errors, a),
	}
}
