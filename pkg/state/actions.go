package state

import (
	"time"

	"github.com/tobenna/walletdash/pkg/models"
)

// Action is a plain descriptive record of "something happened", dispatched
// into the store. Reducers compute the next state from it; effects may
// react to it with I/O and dispatch a follow-up result action.
type Action interface {
	isAction()
}

// --- user ---

// SetEmail replaces the active session email.
type SetEmail struct {
	Email string
}

// --- wallet ---

// CreateWalletRequested asks the ledger to create a wallet for the email.
type CreateWalletRequested struct {
	Email string
}

// WalletCreated is the combined result of a successful wallet creation.
// Both the wallet and user reducers consume it, so onboarding needs no
// hidden second dispatch to set the session email.
type WalletCreated struct {
	User   models.User
	Wallet models.Wallet
}

// CreateWalletFailed reports a failed wallet creation.
type CreateWalletFailed struct {
	Message string
}

// FetchWalletRequested asks the ledger for the wallet owned by the email.
type FetchWalletRequested struct {
	Email string
}

// WalletFetched carries a freshly resolved wallet.
type WalletFetched struct {
	Wallet models.Wallet
}

// FetchWalletFailed reports a failed wallet lookup.
type FetchWalletFailed struct {
	Message string
}

// DepositRequested asks the ledger to credit a currency slot.
type DepositRequested struct {
	Email    string
	Amount   float64
	Currency models.Currency
}

// DepositSucceeded carries the wallet after a successful deposit.
type DepositSucceeded struct {
	Wallet models.Wallet
}

// DepositFailed reports a failed deposit.
type DepositFailed struct {
	Message string
}

// TransferRequested asks the ledger to move funds to another wallet.
type TransferRequested struct {
	FromEmail       string
	ToWalletAddress string
	Amount          float64
	FromCurrency    models.Currency
	ToCurrency      models.Currency
	ConvertedAmount float64
	ExchangeRate    float64
}

// TransferSucceeded carries the sender's wallet after a successful transfer.
type TransferSucceeded struct {
	SenderWallet models.Wallet
}

// TransferFailed reports a failed transfer.
type TransferFailed struct {
	Message string
}

// SwapRequested asks the ledger to convert between two currency slots.
type SwapRequested struct {
	FromEmail       string
	Amount          float64
	FromCurrency    models.Currency
	ToCurrency      models.Currency
	ConvertedAmount float64
	ExchangeRate    float64
}

// SwapSucceeded carries the wallet after a successful swap.
type SwapSucceeded struct {
	Wallet models.Wallet
}

// SwapFailed reports a failed swap.
type SwapFailed struct {
	Message string
}

// ClearWalletError returns a failed wallet operation to idle.
type ClearWalletError struct {
	Kind WalletOpKind
}

// --- transactions ---

// FetchTransactionsRequested asks the ledger for a wallet's full history.
type FetchTransactionsRequested struct {
	WalletAddress string
}

// TransactionsFetched replaces the transaction list with the full result set.
type TransactionsFetched struct {
	Items []models.Transaction
}

// FetchTransactionsFailed reports a failed history fetch.
type FetchTransactionsFailed struct {
	Message string
}

// LoadMoreRequested advances the visible page over the already-fetched
// list. It is a no-op when no further page exists.
type LoadMoreRequested struct{}

// ResetTransactions restores the transaction slice to its initial state.
type ResetTransactions struct{}

// --- exchange rates ---

// FetchRatesRequested asks the FX client for the latest rate table.
type FetchRatesRequested struct {
	Base    models.Currency
	Symbols []models.Currency
}

// RatesFetched replaces the current rate snapshot.
type RatesFetched struct {
	Snapshot models.ExchangeRateSnapshot
}

// FetchRatesFailed reports a failed rates fetch.
type FetchRatesFailed struct {
	Message string
}

// FetchHistoricalRequested asks the FX client for a daily rate series.
type FetchHistoricalRequested struct {
	Base   models.Currency
	Symbol models.Currency
	Start  time.Time
	End    time.Time
}

// HistoricalFetched replaces the historical series.
type HistoricalFetched struct {
	Points []models.RatePoint
}

// FetchHistoricalFailed reports a failed series fetch.
type FetchHistoricalFailed struct {
	Message string
}

// ConvertRequested asks the FX client for a one-shot conversion.
type ConvertRequested struct {
	From   models.Currency
	To     models.Currency
	Amount float64
}

// ConversionSucceeded replaces the conversion result.
type ConversionSucceeded struct {
	Result models.ConversionResult
}

// ConvertFailed reports a failed conversion.
type ConvertFailed struct {
	Message string
}

// --- error log ---

// ErrorLogged appends a normalized error to the diagnostic log.
type ErrorLogged struct {
	Err models.AppError
}

// ErrorDismissed removes one entry from the diagnostic log.
type ErrorDismissed struct {
	Id string
}

// ErrorsCleared empties the diagnostic log.
type ErrorsCleared struct{}

// ErrorsClearedByType removes all entries of one error type.
type ErrorsClearedByType struct {
	Type models.ErrorType
}

func (SetEmail) isAction()                  {}
func (CreateWalletRequested) isAction()     {}
func (WalletCreated) isAction()             {}
func (CreateWalletFailed) isAction()        {}
func (FetchWalletRequested) isAction()      {}
func (WalletFetched) isAction()             {}
func (FetchWalletFailed) isAction()         {}
func (DepositRequested) isAction()          {}
func (DepositSucceeded) isAction()          {}
func (DepositFailed) isAction()             {}
func (TransferRequested) isAction()         {}
func (TransferSucceeded) isAction()         {}
func (TransferFailed) isAction()            {}
func (SwapRequested) isAction()             {}
func (SwapSucceeded) isAction()             {}
func (SwapFailed) isAction()                {}
func (ClearWalletError) isAction()          {}
func (FetchTransactionsRequested) isAction() {}
func (TransactionsFetched) isAction()       {}
func (FetchTransactionsFailed) isAction()   {}
func (LoadMoreRequested) isAction()         {}
func (ResetTransactions) isAction()         {}
func (FetchRatesRequested) isAction()       {}
func (RatesFetched) isAction()              {}
func (FetchRatesFailed) isAction()          {}
func (FetchHistoricalRequested) isAction()  {}
func (HistoricalFetched) isAction()         {}
func (FetchHistoricalFailed) isAction()     {}
func (ConvertRequested) isAction()          {}
func (ConversionSucceeded) isAction()       {}
func (ConvertFailed) isAction()             {}
func (ErrorLogged) isAction()               {}
func (ErrorDismissed) isAction()            {}
func (ErrorsCleared) isAction()             {}
func (ErrorsClearedByType) isAction()       {}
