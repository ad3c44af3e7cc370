package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobenna/walletdash/pkg/models"
)

func TestSelectHasMore(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		expected bool
	}{
		{"EmptyList", 0, 0, false},
		{"UnderOnePage", 5, 0, false},
		{"ExactlyOnePage", 20, 0, false},
		{"JustOverOnePage", 21, 0, true},
		{"MiddlePage", 45, 1, true},
		{"LastPage", 45, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := InitialState()
			s.Transactions.Items = makeTransactions(tc.total)
			s.Transactions.Page = tc.page
			assert.Equal(t, tc.expected, SelectHasMore(s))
		})
	}
}

func TestSelectTransactionPage(t *testing.T) {
	t.Run("FirstPage", func(t *testing.T) {
		s := InitialState()
		s.Transactions = reduceTransactions(s.Transactions, TransactionsFetched{Items: makeTransactions(45)})

		view := SelectTransactionPage(s)
		require.Len(t, view.Items, 20)
		assert.Equal(t, "tx-0", view.Items[0].Id)
		assert.Equal(t, 45, view.Total)
		assert.True(t, view.HasMore)
	})

	t.Run("PartialLastPage", func(t *testing.T) {
		s := InitialState()
		s.Transactions = reduceTransactions(s.Transactions, TransactionsFetched{Items: makeTransactions(45)})
		s.Transactions = reduceTransactions(s.Transactions, LoadMoreRequested{})
		s.Transactions = reduceTransactions(s.Transactions, LoadMoreRequested{})

		view := SelectTransactionPage(s)
		require.Len(t, view.Items, 5)
		assert.Equal(t, "tx-40", view.Items[0].Id)
		assert.False(t, view.HasMore)
	})

	t.Run("EmptyList", func(t *testing.T) {
		view := SelectTransactionPage(InitialState())
		assert.Empty(t, view.Items)
		assert.Equal(t, 0, view.Total)
		assert.False(t, view.HasMore)
	})

	t.Run("BundlesLoadingAndError", func(t *testing.T) {
		s := InitialState()
		s.Transactions.Loading = true
		s.Transactions.Err = "boom"

		view := SelectTransactionPage(s)
		assert.True(t, view.Loading)
		assert.Equal(t, "boom", view.Err)
	})
}

func TestSelectOpStatus(t *testing.T) {
	s := InitialState()
	assert.Equal(t, OpStatus{}, SelectOpStatus(s, WalletOpDeposit))

	s.Wallet = reduceWallet(s.Wallet, DepositRequested{Email: "a@b.com"})
	assert.Equal(t, PhasePending, SelectOpStatus(s, WalletOpDeposit).Phase)
}

func TestSelectErrorsByType(t *testing.T) {
	s := InitialState()
	s.Errors = reduceErrors(s.Errors, ErrorLogged{Err: models.AppError{Id: "e-1", Type: models.ErrorTypeAPI}})
	s.Errors = reduceErrors(s.Errors, ErrorLogged{Err: models.AppError{Id: "e-2", Type: models.ErrorTypeNetwork}})

	apiErrs := SelectErrorsByType(s, models.ErrorTypeAPI)
	require.Len(t, apiErrs, 1)
	assert.Equal(t, "e-1", apiErrs[0].Id)
}
