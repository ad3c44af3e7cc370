package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobenna/walletdash/pkg/models"
)

func TestUserReducer(t *testing.T) {
	t.Run("SetEmail", func(t *testing.T) {
		s := reduceUser(UserState{}, SetEmail{Email: "a@b.com"})
		assert.Equal(t, "a@b.com", s.Email)
	})

	t.Run("WalletCreatedSetsEmail", func(t *testing.T) {
		s := reduceUser(UserState{}, WalletCreated{User: models.User{Email: "a@b.com"}})
		assert.Equal(t, "a@b.com", s.Email)
	})

	t.Run("IgnoresUnrelatedActions", func(t *testing.T) {
		s := reduceUser(UserState{Email: "a@b.com"}, DepositFailed{Message: "x"})
		assert.Equal(t, "a@b.com", s.Email)
	})
}

func TestWalletReducerOperationLifecycle(t *testing.T) {
	wallet := models.Wallet{Address: "1234567890", Balances: models.ZeroBalances()}

	kinds := []struct {
		kind      WalletOpKind
		requested Action
		succeeded Action
		failed    Action
	}{
		{WalletOpCreate, CreateWalletRequested{Email: "a@b.com"}, WalletCreated{Wallet: wallet}, CreateWalletFailed{Message: "boom"}},
		{WalletOpFetch, FetchWalletRequested{Email: "a@b.com"}, WalletFetched{Wallet: wallet}, FetchWalletFailed{Message: "boom"}},
		{WalletOpDeposit, DepositRequested{Email: "a@b.com"}, DepositSucceeded{Wallet: wallet}, DepositFailed{Message: "boom"}},
		{WalletOpTransfer, TransferRequested{FromEmail: "a@b.com"}, TransferSucceeded{SenderWallet: wallet}, TransferFailed{Message: "boom"}},
		{WalletOpSwap, SwapRequested{FromEmail: "a@b.com"}, SwapSucceeded{Wallet: wallet}, SwapFailed{Message: "boom"}},
	}

	for _, tc := range kinds {
		t.Run(string(tc.kind), func(t *testing.T) {
			initial := InitialState().Wallet

			pending := reduceWallet(initial, tc.requested)
			assert.Equal(t, PhasePending, pending.Ops[tc.kind].Phase)
			assert.Empty(t, pending.Ops[tc.kind].Err)

			t.Run("Success", func(t *testing.T) {
				s := reduceWallet(pending, tc.succeeded)
				assert.Equal(t, PhaseIdle, s.Ops[tc.kind].Phase)
				require.NotNil(t, s.Wallet)
				assert.Equal(t, "1234567890", s.Wallet.Address)
			})

			t.Run("Failure", func(t *testing.T) {
				s := reduceWallet(pending, tc.failed)
				assert.Equal(t, PhaseFailed, s.Ops[tc.kind].Phase)
				assert.Equal(t, "boom", s.Ops[tc.kind].Err)

				cleared := reduceWallet(s, ClearWalletError{Kind: tc.kind})
				assert.Equal(t, OpStatus{}, cleared.Ops[tc.kind])
			})

			t.Run("RetryReentersPending", func(t *testing.T) {
				failed := reduceWallet(pending, tc.failed)
				retried := reduceWallet(failed, tc.requested)
				assert.Equal(t, PhasePending, retried.Ops[tc.kind].Phase)
				assert.Empty(t, retried.Ops[tc.kind].Err)
			})
		})
	}
}

func TestWalletReducerKindsAreIndependent(t *testing.T) {
	s := InitialState().Wallet
	s = reduceWallet(s, DepositRequested{Email: "a@b.com"})
	s = reduceWallet(s, SwapFailed{Message: "swap broke"})

	assert.Equal(t, PhasePending, s.Ops[WalletOpDeposit].Phase)
	assert.Equal(t, PhaseFailed, s.Ops[WalletOpSwap].Phase)
	assert.Empty(t, s.Ops[WalletOpDeposit].Err)
}

func TestWalletReducerIsPure(t *testing.T) {
	before := InitialState().Wallet
	before = reduceWallet(before, DepositRequested{Email: "a@b.com"})

	_ = reduceWallet(before, DepositFailed{Message: "boom"})

	// The prior state is untouched by the later reduction.
	assert.Equal(t, PhasePending, before.Ops[WalletOpDeposit].Phase)
}

func makeTransactions(n int) []models.Transaction {
	items := make([]models.Transaction, n)
	for i := range items {
		items[i] = models.Transaction{Id: fmt.Sprintf("tx-%d", i)}
	}
	return items
}

func TestTransactionReducer(t *testing.T) {
	t.Run("FetchReplaces", func(t *testing.T) {
		s := initialTransactionState()
		s = reduceTransactions(s, FetchTransactionsRequested{WalletAddress: "addr"})
		assert.True(t, s.Loading)

		s = reduceTransactions(s, TransactionsFetched{Items: makeTransactions(45)})
		assert.False(t, s.Loading)
		assert.Equal(t, 45, s.Total)
		assert.Equal(t, 0, s.Page)
		assert.True(t, s.HasMore)

		// A refetch replaces rather than appends.
		s = reduceTransactions(s, TransactionsFetched{Items: makeTransactions(5)})
		assert.Equal(t, 5, s.Total)
		assert.False(t, s.HasMore)
	})

	t.Run("FetchFailure", func(t *testing.T) {
		s := reduceTransactions(initialTransactionState(), FetchTransactionsRequested{})
		s = reduceTransactions(s, FetchTransactionsFailed{Message: "boom"})
		assert.False(t, s.Loading)
		assert.Equal(t, "boom", s.Err)
	})

	t.Run("LoadMoreAdvancesPage", func(t *testing.T) {
		s := reduceTransactions(initialTransactionState(), TransactionsFetched{Items: makeTransactions(45)})

		s = reduceTransactions(s, LoadMoreRequested{})
		assert.Equal(t, 1, s.Page)
		assert.True(t, s.HasMore)

		s = reduceTransactions(s, LoadMoreRequested{})
		assert.Equal(t, 2, s.Page)
		assert.False(t, s.HasMore)
	})

	t.Run("LoadMoreAtEndIsNoOp", func(t *testing.T) {
		s := reduceTransactions(initialTransactionState(), TransactionsFetched{Items: makeTransactions(5)})
		require.False(t, s.HasMore)

		next := reduceTransactions(s, LoadMoreRequested{})
		assert.Equal(t, s, next)
	})

	t.Run("Reset", func(t *testing.T) {
		s := reduceTransactions(initialTransactionState(), TransactionsFetched{Items: makeTransactions(45)})
		s = reduceTransactions(s, LoadMoreRequested{})

		s = reduceTransactions(s, ResetTransactions{})
		assert.Equal(t, initialTransactionState(), s)
	})
}

func TestRatesReducerTriosAreIndependent(t *testing.T) {
	s := RatesState{}

	s = reduceRates(s, FetchRatesRequested{Base: models.USD})
	s = reduceRates(s, FetchHistoricalRequested{})
	assert.True(t, s.LoadingRates)
	assert.True(t, s.LoadingHistorical)
	assert.False(t, s.LoadingConversion)

	s = reduceRates(s, FetchRatesFailed{Message: "rates down"})
	assert.Equal(t, "rates down", s.RatesErr)
	assert.True(t, s.LoadingHistorical)
	assert.Empty(t, s.HistoricalErr)

	s = reduceRates(s, HistoricalFetched{Points: []models.RatePoint{{Date: "2026-08-01", Rate: 1.1}}})
	assert.False(t, s.LoadingHistorical)
	assert.Len(t, s.Historical, 1)

	// A fresh rates fetch clears only its own error.
	s = reduceRates(s, ConvertRequested{From: models.USD, To: models.EUR, Amount: 10})
	assert.True(t, s.LoadingConversion)
	assert.Equal(t, "rates down", s.RatesErr)

	s = reduceRates(s, ConversionSucceeded{Result: models.ConversionResult{Rate: 0.92, Result: 9.2}})
	require.NotNil(t, s.Conversion)
	assert.Equal(t, 9.2, s.Conversion.Result)
}

func TestErrorsReducer(t *testing.T) {
	logged := func(id string, typ models.ErrorType) Action {
		return ErrorLogged{Err: models.AppError{Id: id, Type: typ}}
	}

	t.Run("NewestFirstBounded", func(t *testing.T) {
		s := ErrorsState{}
		for i := 0; i < 15; i++ {
			s = reduceErrors(s, logged(fmt.Sprintf("e-%d", i), models.ErrorTypeAPI))
		}
		require.Len(t, s.Items, MaxErrorLog)
		assert.Equal(t, "e-14", s.Items[0].Id)
		assert.Equal(t, "e-5", s.Items[MaxErrorLog-1].Id)
	})

	t.Run("Dismiss", func(t *testing.T) {
		s := ErrorsState{}
		s = reduceErrors(s, logged("e-1", models.ErrorTypeAPI))
		s = reduceErrors(s, logged("e-2", models.ErrorTypeNetwork))

		s = reduceErrors(s, ErrorDismissed{Id: "e-1"})
		require.Len(t, s.Items, 1)
		assert.Equal(t, "e-2", s.Items[0].Id)
	})

	t.Run("ClearByType", func(t *testing.T) {
		s := ErrorsState{}
		s = reduceErrors(s, logged("e-1", models.ErrorTypeAPI))
		s = reduceErrors(s, logged("e-2", models.ErrorTypeNetwork))
		s = reduceErrors(s, logged("e-3", models.ErrorTypeAPI))

		s = reduceErrors(s, ErrorsClearedByType{Type: models.ErrorTypeAPI})
		require.Len(t, s.Items, 1)
		assert.Equal(t, models.ErrorTypeNetwork, s.Items[0].Type)
	})

	t.Run("ClearAll", func(t *testing.T) {
		s := ErrorsState{}
		s = reduceErrors(s, logged("e-1", models.ErrorTypeAPI))
		s = reduceErrors(s, ErrorsCleared{})
		assert.Empty(t, s.Items)
	})
}
