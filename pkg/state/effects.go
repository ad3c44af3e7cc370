package state

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tobenna/walletdash/pkg/fx"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/models"
)

// Ledger is the slice of the mock ledger the effects depend on.
type Ledger interface {
	CreateWallet(ctx context.Context, email string) ledger.Result
	GetWallet(ctx context.Context, email string) ledger.Result
	Deposit(ctx context.Context, p ledger.DepositParams) ledger.Result
	Transfer(ctx context.Context, p ledger.TransferParams) ledger.Result
	Swap(ctx context.Context, p ledger.SwapParams) ledger.Result
	ListTransactions(ctx context.Context, walletAddress string) ledger.Result
}

// Rates is the slice of the FX client the effects depend on.
type Rates interface {
	Latest(ctx context.Context, base models.Currency, symbols []models.Currency) (*models.ExchangeRateSnapshot, error)
	Convert(ctx context.Context, from, to models.Currency, amount float64) (*models.ConversionResult, error)
	Historical(ctx context.Context, base, symbol models.Currency, start, end time.Time) ([]models.RatePoint, error)
}

var _ Ledger = (*ledger.Service)(nil)
var _ Rates = (*fx.Client)(nil)

// Effects bridges request intents to the mock ledger and FX client. Each
// request intent produces exactly one success or failure action; failures
// are normalized once and additionally pushed to the diagnostic log.
// Nothing here retries, batches, or debounces.
type Effects struct {
	store  *Store
	ledger Ledger
	rates  Rates
	logger *zap.Logger
}

// RegisterEffects wires an Effects instance into the store's dispatch loop.
func RegisterEffects(store *Store, l Ledger, r Rates, logger *zap.Logger) *Effects {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Effects{store: store, ledger: l, rates: r, logger: logger}
	store.AddEffect(e.handle)
	return e
}

func (e *Effects) handle(a Action) {
	ctx := context.Background()

	switch act := a.(type) {
	case CreateWalletRequested:
		res := e.ledger.CreateWallet(ctx, act.Email)
		if res.OK() {
			body := res.Body.(ledger.CreateWalletResult)
			e.store.Dispatch(WalletCreated{User: body.User, Wallet: body.Wallet})
			return
		}
		e.fail(res, func(msg string) Action { return CreateWalletFailed{Message: msg} })

	case FetchWalletRequested:
		res := e.ledger.GetWallet(ctx, act.Email)
		if res.OK() {
			e.store.Dispatch(WalletFetched{Wallet: res.Body.(models.Wallet)})
			return
		}
		e.fail(res, func(msg string) Action { return FetchWalletFailed{Message: msg} })

	case DepositRequested:
		res := e.ledger.Deposit(ctx, ledger.DepositParams{
			Email:    act.Email,
			Amount:   act.Amount,
			Currency: act.Currency,
		})
		if res.OK() {
			e.store.Dispatch(DepositSucceeded{Wallet: res.Body.(ledger.DepositResult).Wallet})
			return
		}
		e.fail(res, func(msg string) Action { return DepositFailed{Message: msg} })

	case TransferRequested:
		res := e.ledger.Transfer(ctx, ledger.TransferParams{
			FromEmail:       act.FromEmail,
			ToWalletAddress: act.ToWalletAddress,
			Amount:          act.Amount,
			FromCurrency:    act.FromCurrency,
			ToCurrency:      act.ToCurrency,
			ConvertedAmount: act.ConvertedAmount,
			ExchangeRate:    act.ExchangeRate,
		})
		if res.OK() {
			e.store.Dispatch(TransferSucceeded{SenderWallet: res.Body.(ledger.TransferResult).SenderWallet})
			return
		}
		e.fail(res, func(msg string) Action { return TransferFailed{Message: msg} })

	case SwapRequested:
		res := e.ledger.Swap(ctx, ledger.SwapParams{
			FromEmail:       act.FromEmail,
			Amount:          act.Amount,
			FromCurrency:    act.FromCurrency,
			ToCurrency:      act.ToCurrency,
			ConvertedAmount: act.ConvertedAmount,
			ExchangeRate:    act.ExchangeRate,
		})
		if res.OK() {
			e.store.Dispatch(SwapSucceeded{Wallet: res.Body.(ledger.SwapResult).Wallet})
			return
		}
		e.fail(res, func(msg string) Action { return SwapFailed{Message: msg} })

	case FetchTransactionsRequested:
		res := e.ledger.ListTransactions(ctx, act.WalletAddress)
		if res.OK() {
			e.store.Dispatch(TransactionsFetched{Items: res.Body.([]models.Transaction)})
			return
		}
		e.fail(res, func(msg string) Action { return FetchTransactionsFailed{Message: msg} })

	case FetchRatesRequested:
		snapshot, err := e.rates.Latest(ctx, act.Base, act.Symbols)
		if err != nil {
			e.failErr(err, func(msg string) Action { return FetchRatesFailed{Message: msg} })
			return
		}
		e.store.Dispatch(RatesFetched{Snapshot: *snapshot})

	case FetchHistoricalRequested:
		points, err := e.rates.Historical(ctx, act.Base, act.Symbol, act.Start, act.End)
		if err != nil {
			e.failErr(err, func(msg string) Action { return FetchHistoricalFailed{Message: msg} })
			return
		}
		e.store.Dispatch(HistoricalFetched{Points: points})

	case ConvertRequested:
		result, err := e.rates.Convert(ctx, act.From, act.To, act.Amount)
		if err != nil {
			e.failErr(err, func(msg string) Action { return ConvertFailed{Message: msg} })
			return
		}
		e.store.Dispatch(ConversionSucceeded{Result: *result})
	}
}

// fail normalizes a non-2xx ledger result, dispatches the slice-local
// failure action, and pushes the normalized error to the diagnostic log.
func (e *Effects) fail(res ledger.Result, failure func(msg string) Action) {
	appErr := Normalize(res.Status, res.ErrorMessage())
	e.logger.Warn("ledger call failed",
		zap.Int("status", res.Status),
		zap.String("type", string(appErr.Type)),
		zap.String("message", appErr.Message))
	e.store.Dispatch(failure(appErr.Message))
	e.store.Dispatch(ErrorLogged{Err: appErr})
}

// failErr normalizes an FX client error through the same taxonomy.
func (e *Effects) failErr(err error, failure func(msg string) Action) {
	status := -1
	message := err.Error()
	var statusErr *fx.StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Status
		message = statusErr.Message
	}
	appErr := Normalize(status, message)
	e.logger.Warn("fx call failed",
		zap.Int("status", status),
		zap.String("type", string(appErr.Type)),
		zap.String("message", appErr.Message))
	e.store.Dispatch(failure(appErr.Message))
	e.store.Dispatch(ErrorLogged{Err: appErr})
}
