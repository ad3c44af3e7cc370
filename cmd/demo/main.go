// Command demo drives the full client pipeline — dispatch, effects, mock
// ledger, reducers, selectors — through an onboarding, deposit, and
// transfer session, logging each state transition.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/tobenna/walletdash/pkg/fx"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/models"
	"github.com/tobenna/walletdash/pkg/state"
	"github.com/tobenna/walletdash/pkg/storage"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	kv := localstore.NewMemoryKV()
	svc := ledger.NewService(storage.NewKVStorage(kv), logger, ledger.WithLatency(50*time.Millisecond))
	rates := fx.NewClient("https://api.exchangerate.host", "", nil, logger)

	store := state.NewStore(
		state.WithLogger(logger),
		state.WithPersistence(state.NewSessionPersister(kv)),
	)
	state.RegisterEffects(store, svc, rates, logger)

	unsubscribe := store.Subscribe(func(s state.AppState) {
		if wallet := state.SelectWallet(s); wallet != nil {
			logger.Info("state changed",
				zap.String("email", state.SelectEmail(s)),
				zap.Float64("usd", wallet.Balances[models.USD]))
		}
	})
	defer unsubscribe()

	// Onboard two users.
	store.Dispatch(state.CreateWalletRequested{Email: "a@b.com"})
	waitFor(store, func(s state.AppState) bool {
		return state.SelectWallet(s) != nil && state.SelectOpStatus(s, state.WalletOpCreate).Phase == state.PhaseIdle
	})
	sender := *state.SelectWallet(store.State())

	receiverRes := svc.CreateWallet(context.Background(), "c@d.com")
	receiver := receiverRes.Body.(ledger.CreateWalletResult).Wallet

	// Deposit, then transfer to the second wallet at rate 1.0.
	store.Dispatch(state.DepositRequested{Email: "a@b.com", Amount: 500, Currency: models.USD})
	waitFor(store, func(s state.AppState) bool {
		return state.SelectWallet(s).Balances[models.USD] == 500
	})

	store.Dispatch(state.TransferRequested{
		FromEmail:       "a@b.com",
		ToWalletAddress: receiver.Address,
		Amount:          200,
		FromCurrency:    models.USD,
		ToCurrency:      models.USD,
		ConvertedAmount: 200,
		ExchangeRate:    1.0,
	})
	waitFor(store, func(s state.AppState) bool {
		return state.SelectWallet(s).Balances[models.USD] == 300
	})

	store.Dispatch(state.FetchTransactionsRequested{WalletAddress: sender.Address})
	waitFor(store, func(s state.AppState) bool {
		return !s.Transactions.Loading && s.Transactions.Total > 0
	})

	view := state.SelectTransactionPage(store.State())
	logger.Info("session complete",
		zap.Float64("sender_usd", state.SelectWallet(store.State()).Balances[models.USD]),
		zap.Int("sender_transactions", view.Total),
		zap.Bool("has_more", view.HasMore))
}

// waitFor blocks until the predicate holds or a 5s deadline passes.
func waitFor(store *state.Store, done func(state.AppState) bool) {
	signal := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func(s state.AppState) {
		if done(s) {
			select {
			case signal <- struct{}{}:
			default:
			}
		}
	})
	defer unsubscribe()

	if done(store.State()) {
		return
	}
	select {
	case <-signal:
	case <-time.After(5 * time.Second):
		log.Fatal("timed out waiting for state transition")
	}
}
