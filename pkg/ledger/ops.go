package ledger

import (
	"context"
	"net/http"
)

// Operation enumerates the closed set of ledger operations. Dispatch is by
// tagged variant, never by inspecting a path or collection name.
type Operation int

const (
	OpCreateWallet Operation = iota
	OpGetWallet
	OpDeposit
	OpTransfer
	OpSwap
	OpListTransactions
)

func (op Operation) String() string {
	switch op {
	case OpCreateWallet:
		return "create_wallet"
	case OpGetWallet:
		return "get_wallet"
	case OpDeposit:
		return "deposit"
	case OpTransfer:
		return "transfer"
	case OpSwap:
		return "swap"
	case OpListTransactions:
		return "list_transactions"
	}
	return "unknown"
}

// CreateWalletParams are the inputs to a wallet creation.
type CreateWalletParams struct {
	Email string
}

// GetWalletParams are the inputs to a wallet lookup.
type GetWalletParams struct {
	Email string
}

// ListTransactionsParams are the inputs to a transaction history query.
type ListTransactionsParams struct {
	WalletAddress string
}

// Execute dispatches an operation to its handler. A params value of the
// wrong shape for the operation yields a 400 result.
func (s *Service) Execute(ctx context.Context, op Operation, params any) Result {
	switch op {
	case OpCreateWallet:
		if p, ok := params.(CreateWalletParams); ok {
			return s.CreateWallet(ctx, p.Email)
		}
	case OpGetWallet:
		if p, ok := params.(GetWalletParams); ok {
			return s.GetWallet(ctx, p.Email)
		}
	case OpDeposit:
		if p, ok := params.(DepositParams); ok {
			return s.Deposit(ctx, p)
		}
	case OpTransfer:
		if p, ok := params.(TransferParams); ok {
			return s.Transfer(ctx, p)
		}
	case OpSwap:
		if p, ok := params.(SwapParams); ok {
			return s.Swap(ctx, p)
		}
	case OpListTransactions:
		if p, ok := params.(ListTransactionsParams); ok {
			return s.ListTransactions(ctx, p.WalletAddress)
		}
	}
	return Result{Status: http.StatusBadRequest, Body: ErrorBody{Error: "invalid operation parameters"}}
}
