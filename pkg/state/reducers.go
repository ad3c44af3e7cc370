package state

import (
	"github.com/tobenna/walletdash/pkg/models"
)

// reduceUser replaces the session email wholesale. WalletCreated carries
// the onboarding email, so the user slice reacts to it directly.
func reduceUser(s UserState, a Action) UserState {
	switch act := a.(type) {
	case SetEmail:
		return UserState{Email: act.Email}
	case WalletCreated:
		return UserState{Email: act.User.Email}
	}
	return s
}

// withOp returns a WalletState with one operation's status replaced,
// copying the map so prior states stay untouched.
func withOp(s WalletState, kind WalletOpKind, status OpStatus) WalletState {
	ops := make(map[WalletOpKind]OpStatus, len(s.Ops)+1)
	for k, v := range s.Ops {
		ops[k] = v
	}
	ops[kind] = status
	s.Ops = ops
	return s
}

func reduceWallet(s WalletState, a Action) WalletState {
	switch act := a.(type) {
	case CreateWalletRequested:
		return withOp(s, WalletOpCreate, OpStatus{Phase: PhasePending})
	case WalletCreated:
		next := withOp(s, WalletOpCreate, OpStatus{})
		wallet := act.Wallet
		next.Wallet = &wallet
		return next
	case CreateWalletFailed:
		return withOp(s, WalletOpCreate, OpStatus{Phase: PhaseFailed, Err: act.Message})

	case FetchWalletRequested:
		return withOp(s, WalletOpFetch, OpStatus{Phase: PhasePending})
	case WalletFetched:
		next := withOp(s, WalletOpFetch, OpStatus{})
		wallet := act.Wallet
		next.Wallet = &wallet
		return next
	case FetchWalletFailed:
		return withOp(s, WalletOpFetch, OpStatus{Phase: PhaseFailed, Err: act.Message})

	case DepositRequested:
		return withOp(s, WalletOpDeposit, OpStatus{Phase: PhasePending})
	case DepositSucceeded:
		next := withOp(s, WalletOpDeposit, OpStatus{})
		wallet := act.Wallet
		next.Wallet = &wallet
		return next
	case DepositFailed:
		return withOp(s, WalletOpDeposit, OpStatus{Phase: PhaseFailed, Err: act.Message})

	case TransferRequested:
		return withOp(s, WalletOpTransfer, OpStatus{Phase: PhasePending})
	case TransferSucceeded:
		next := withOp(s, WalletOpTransfer, OpStatus{})
		wallet := act.SenderWallet
		next.Wallet = &wallet
		return next
	case TransferFailed:
		return withOp(s, WalletOpTransfer, OpStatus{Phase: PhaseFailed, Err: act.Message})

	case SwapRequested:
		return withOp(s, WalletOpSwap, OpStatus{Phase: PhasePending})
	case SwapSucceeded:
		next := withOp(s, WalletOpSwap, OpStatus{})
		wallet := act.Wallet
		next.Wallet = &wallet
		return next
	case SwapFailed:
		return withOp(s, WalletOpSwap, OpStatus{Phase: PhaseFailed, Err: act.Message})

	case ClearWalletError:
		return withOp(s, act.Kind, OpStatus{})
	}
	return s
}

func hasMorePages(page, pageSize, total int) bool {
	return (page+1)*pageSize < total
}

func reduceTransactions(s TransactionState, a Action) TransactionState {
	switch act := a.(type) {
	case FetchTransactionsRequested:
		s.Loading = true
		s.Err = ""
		return s
	case TransactionsFetched:
		s.Items = act.Items
		s.Total = len(act.Items)
		s.Page = 0
		s.Loading = false
		s.Err = ""
		s.HasMore = hasMorePages(s.Page, s.PageSize, s.Total)
		return s
	case FetchTransactionsFailed:
		s.Loading = false
		s.Err = act.Message
		return s
	case LoadMoreRequested:
		// Paging is purely client-side over the fetched list; advancing
		// past the last page is a no-op.
		if !s.HasMore {
			return s
		}
		s.Page++
		s.HasMore = hasMorePages(s.Page, s.PageSize, s.Total)
		return s
	case ResetTransactions:
		return initialTransactionState()
	}
	return s
}

func reduceRates(s RatesState, a Action) RatesState {
	switch act := a.(type) {
	case FetchRatesRequested:
		s.LoadingRates = true
		s.RatesErr = ""
		return s
	case RatesFetched:
		snapshot := act.Snapshot
		s.Latest = &snapshot
		s.LoadingRates = false
		return s
	case FetchRatesFailed:
		s.LoadingRates = false
		s.RatesErr = act.Message
		return s

	case FetchHistoricalRequested:
		s.LoadingHistorical = true
		s.HistoricalErr = ""
		return s
	case HistoricalFetched:
		s.Historical = act.Points
		s.LoadingHistorical = false
		return s
	case FetchHistoricalFailed:
		s.LoadingHistorical = false
		s.HistoricalErr = act.Message
		return s

	case ConvertRequested:
		s.LoadingConversion = true
		s.ConversionErr = ""
		return s
	case ConversionSucceeded:
		result := act.Result
		s.Conversion = &result
		s.LoadingConversion = false
		return s
	case ConvertFailed:
		s.LoadingConversion = false
		s.ConversionErr = act.Message
		return s
	}
	return s
}

func reduceErrors(s ErrorsState, a Action) ErrorsState {
	switch act := a.(type) {
	case ErrorLogged:
		items := make([]models.AppError, 0, len(s.Items)+1)
		items = append(items, act.Err)
		items = append(items, s.Items...)
		if len(items) > MaxErrorLog {
			items = items[:MaxErrorLog]
		}
		return ErrorsState{Items: items}
	case ErrorDismissed:
		var items []models.AppError
		for _, e := range s.Items {
			if e.Id != act.Id {
				items = append(items, e)
			}
		}
		return ErrorsState{Items: items}
	case ErrorsCleared:
		return ErrorsState{}
	case ErrorsClearedByType:
		var items []models.AppError
		for _, e := range s.Items {
			if e.Type != act.Type {
				items = append(items, e)
			}
		}
		return ErrorsState{Items: items}
	}
	return s
}
