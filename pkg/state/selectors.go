package state

import (
	"github.com/tobenna/walletdash/pkg/models"
)

// Selectors are pure derivations over the state tree. They never mutate
// state and carry no dependencies, so components can call them on every
// notification.

// SelectEmail returns the active session email.
func SelectEmail(s AppState) string {
	return s.User.Email
}

// SelectWallet returns the current wallet record, or nil before onboarding.
func SelectWallet(s AppState) *models.Wallet {
	return s.Wallet.Wallet
}

// SelectOpStatus returns the status of one wallet operation kind.
// Unknown kinds read as idle.
func SelectOpStatus(s AppState, kind WalletOpKind) OpStatus {
	return s.Wallet.Ops[kind]
}

// SelectHasMore reports whether a further transaction page exists beyond
// the currently visible one.
func SelectHasMore(s AppState) bool {
	return hasMorePages(s.Transactions.Page, s.Transactions.PageSize, len(s.Transactions.Items))
}

// TransactionView is the bundled view-model for the transaction list:
// the visible page plus paging metadata and the slice's loading/error state.
type TransactionView struct {
	Items    []models.Transaction
	Page     int
	PageSize int
	Total    int
	HasMore  bool
	Loading  bool
	Err      string
}

// SelectTransactionPage slices the fully-fetched transaction list down to
// the visible page.
func SelectTransactionPage(s AppState) TransactionView {
	t := s.Transactions
	start := t.Page * t.PageSize
	end := start + t.PageSize
	if start > len(t.Items) {
		start = len(t.Items)
	}
	if end > len(t.Items) {
		end = len(t.Items)
	}
	return TransactionView{
		Items:    t.Items[start:end],
		Page:     t.Page,
		PageSize: t.PageSize,
		Total:    len(t.Items),
		HasMore:  SelectHasMore(s),
		Loading:  t.Loading,
		Err:      t.Err,
	}
}

// SelectLatestRates returns the current rate snapshot, or nil.
func SelectLatestRates(s AppState) *models.ExchangeRateSnapshot {
	return s.Rates.Latest
}

// SelectConversion returns the latest conversion result, or nil.
func SelectConversion(s AppState) *models.ConversionResult {
	return s.Rates.Conversion
}

// SelectHistorical returns the historical rate series.
func SelectHistorical(s AppState) []models.RatePoint {
	return s.Rates.Historical
}

// SelectErrors returns the diagnostic error log, newest first.
func SelectErrors(s AppState) []models.AppError {
	return s.Errors.Items
}

// SelectErrorsByType filters the diagnostic log by error type.
func SelectErrorsByType(s AppState, t models.ErrorType) []models.AppError {
	var out []models.AppError
	for _, e := range s.Errors.Items {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
