// Package api defines the wire types for the mock ledger's HTTP-shaped
// surface. Status codes mirror a real transport: 2xx success, 4xx caller
// fault, 5xx simulated backend fault.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// User identifies a wallet owner on the wire.
type User struct {
	Email openapi_types.Email `json:"email"`
}

// Wallet is the wire form of a wallet record.
type Wallet struct {
	Id        string              `json:"id"`
	Email     openapi_types.Email `json:"email"`
	Address   string              `json:"address"`
	Balances  map[string]float64  `json:"balances"`
	CreatedAt time.Time           `json:"created_at"`
}

// Transaction is the wire form of a transaction record.
type Transaction struct {
	Id            string              `json:"id"`
	Email         openapi_types.Email `json:"email"`
	WalletAddress string              `json:"wallet_address"`
	ToAddress     string              `json:"to_address,omitempty"`
	Amount        float64             `json:"amount"`
	Type          string              `json:"type"`
	Direction     string              `json:"direction,omitempty"`
	Currency      string              `json:"currency"`
	CreatedAt     time.Time           `json:"created_at"`
}

// CreateWalletRequest is the body of POST /create/wallet.
type CreateWalletRequest struct {
	User openapi_types.Email `json:"user"`
}

// CreateWalletResponse is the success body of POST /create/wallet.
type CreateWalletResponse struct {
	User   User   `json:"user"`
	Wallet Wallet `json:"wallet"`
}

// DepositRequest is the body of POST /deposit.
type DepositRequest struct {
	Email    openapi_types.Email `json:"email"`
	Amount   float64             `json:"amount"`
	Currency string              `json:"currency"`
}

// DepositResponse is the success body of POST /deposit.
type DepositResponse struct {
	Success bool   `json:"success"`
	Wallet  Wallet `json:"wallet"`
	Message string `json:"message"`
}

// TransferRequest is the body of POST /transfer. The caller supplies the
// converted amount and rate; the ledger does not consult the FX service.
type TransferRequest struct {
	FromEmail       openapi_types.Email `json:"fromEmail"`
	ToWalletAddress string              `json:"toWalletAddress"`
	Amount          float64             `json:"amount"`
	FromCurrency    string              `json:"fromCurrency"`
	ToCurrency      string              `json:"toCurrency"`
	ConvertedAmount float64             `json:"convertedAmount"`
	ExchangeRate    float64             `json:"exchangeRate"`
}

// TransferResponse is the success body of POST /transfer.
type TransferResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	SenderWallet   Wallet `json:"senderWallet"`
	ReceiverWallet Wallet `json:"receiverWallet"`
}

// SwapRequest is the body of POST /swap.
type SwapRequest struct {
	FromEmail       openapi_types.Email `json:"fromEmail"`
	Amount          float64             `json:"amount"`
	FromCurrency    string              `json:"fromCurrency"`
	ToCurrency      string              `json:"toCurrency"`
	ConvertedAmount float64             `json:"convertedAmount"`
	ExchangeRate    float64             `json:"exchangeRate"`
}

// SwapResponse is the success body of POST /swap.
type SwapResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Wallet  Wallet `json:"wallet"`
}

// Error is the failure body for every non-2xx response.
type Error struct {
	Error string `json:"error"`
}
