// Package mapping converts between API wire types and domain models.
package mapping

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tobenna/walletdash/pkg/api"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/models"
)

// ToApiUser converts a domain User to its wire form.
func ToApiUser(user models.User) api.User {
	return api.User{Email: openapi_types.Email(user.Email)}
}

// ToApiWallet converts a domain Wallet to its wire form.
func ToApiWallet(wallet models.Wallet) api.Wallet {
	balances := make(map[string]float64, len(wallet.Balances))
	for currency, amount := range wallet.Balances {
		balances[string(currency)] = amount
	}
	return api.Wallet{
		Id:        wallet.Id,
		Email:     openapi_types.Email(wallet.Email),
		Address:   wallet.Address,
		Balances:  balances,
		CreatedAt: wallet.CreatedAt,
	}
}

// ToApiTransaction converts a domain Transaction to its wire form.
func ToApiTransaction(tx models.Transaction) api.Transaction {
	return api.Transaction{
		Id:            tx.Id,
		Email:         openapi_types.Email(tx.Email),
		WalletAddress: tx.WalletAddress,
		ToAddress:     tx.ToAddress,
		Amount:        tx.Amount,
		Type:          string(tx.Type),
		Direction:     string(tx.Direction),
		Currency:      string(tx.Currency),
		CreatedAt:     tx.CreatedAt,
	}
}

// ToApiTransactions converts a transaction list to its wire form.
func ToApiTransactions(txs []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = ToApiTransaction(tx)
	}
	return out
}

// ToDepositParams converts a deposit request to ledger params.
func ToDepositParams(req api.DepositRequest) ledger.DepositParams {
	return ledger.DepositParams{
		Email:    string(req.Email),
		Amount:   req.Amount,
		Currency: models.Currency(req.Currency),
	}
}

// ToTransferParams converts a transfer request to ledger params.
func ToTransferParams(req api.TransferRequest) ledger.TransferParams {
	return ledger.TransferParams{
		FromEmail:       string(req.FromEmail),
		ToWalletAddress: req.ToWalletAddress,
		Amount:          req.Amount,
		FromCurrency:    models.Currency(req.FromCurrency),
		ToCurrency:      models.Currency(req.ToCurrency),
		ConvertedAmount: req.ConvertedAmount,
		ExchangeRate:    req.ExchangeRate,
	}
}

// ToSwapParams converts a swap request to ledger params.
func ToSwapParams(req api.SwapRequest) ledger.SwapParams {
	return ledger.SwapParams{
		FromEmail:       string(req.FromEmail),
		Amount:          req.Amount,
		FromCurrency:    models.Currency(req.FromCurrency),
		ToCurrency:      models.Currency(req.ToCurrency),
		ConvertedAmount: req.ConvertedAmount,
		ExchangeRate:    req.ExchangeRate,
	}
}
