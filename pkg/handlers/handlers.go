// Package handlers exposes the mock ledger over the HTTP-shaped surface
// the dashboard consumes.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tobenna/walletdash/pkg/api"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/mapping"
	"github.com/tobenna/walletdash/pkg/models"
)

// Ledger is the slice of the mock ledger the handlers depend on.
type Ledger interface {
	CreateWallet(ctx context.Context, email string) ledger.Result
	GetWallet(ctx context.Context, email string) ledger.Result
	Deposit(ctx context.Context, p ledger.DepositParams) ledger.Result
	Transfer(ctx context.Context, p ledger.TransferParams) ledger.Result
	Swap(ctx context.Context, p ledger.SwapParams) ledger.Result
	ListTransactions(ctx context.Context, walletAddress string) ledger.Result
}

var _ Ledger = (*ledger.Service)(nil)

// LedgerHandler holds the dependencies for the ledger surface.
type LedgerHandler struct {
	Ledger Ledger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(l Ledger) *LedgerHandler {
	return &LedgerHandler{Ledger: l}
}

// Routes mounts the full ledger surface on a fresh router.
func (h *LedgerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/create/wallet", h.CreateWallet)
	r.Get("/wallet/{email}", h.GetWallet)
	r.Post("/deposit", h.Deposit)
	r.Post("/transfer", h.Transfer)
	r.Post("/swap", h.Swap)
	r.Get("/transactions/{walletAddress}", h.ListTransactions)
	// The /paginated suffix is accepted for compatibility but the full
	// set is returned either way; paging is client-side.
	r.Get("/transactions/{walletAddress}/paginated", h.ListTransactions)
	return r
}

// CreateWallet handles POST /create/wallet.
func (h *LedgerHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req api.CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	res := h.Ledger.CreateWallet(r.Context(), string(req.User))
	if !res.OK() {
		writeResult(w, res)
		return
	}

	body := res.Body.(ledger.CreateWalletResult)
	writeJSON(w, res.Status, api.CreateWalletResponse{
		User:   mapping.ToApiUser(body.User),
		Wallet: mapping.ToApiWallet(body.Wallet),
	})
}

// GetWallet handles GET /wallet/{email}.
func (h *LedgerHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	res := h.Ledger.GetWallet(r.Context(), email)
	if !res.OK() {
		writeResult(w, res)
		return
	}
	writeJSON(w, res.Status, mapping.ToApiWallet(res.Body.(models.Wallet)))
}

// Deposit handles POST /deposit.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req api.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	res := h.Ledger.Deposit(r.Context(), mapping.ToDepositParams(req))
	if !res.OK() {
		writeResult(w, res)
		return
	}

	body := res.Body.(ledger.DepositResult)
	writeJSON(w, res.Status, api.DepositResponse{
		Success: body.Success,
		Wallet:  mapping.ToApiWallet(body.Wallet),
		Message: body.Message,
	})
}

// Transfer handles POST /transfer.
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req api.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	res := h.Ledger.Transfer(r.Context(), mapping.ToTransferParams(req))
	if !res.OK() {
		writeResult(w, res)
		return
	}

	body := res.Body.(ledger.TransferResult)
	writeJSON(w, res.Status, api.TransferResponse{
		Success:        body.Success,
		Message:        body.Message,
		SenderWallet:   mapping.ToApiWallet(body.SenderWallet),
		ReceiverWallet: mapping.ToApiWallet(body.ReceiverWallet),
	})
}

// Swap handles POST /swap.
func (h *LedgerHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req api.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	res := h.Ledger.Swap(r.Context(), mapping.ToSwapParams(req))
	if !res.OK() {
		writeResult(w, res)
		return
	}

	body := res.Body.(ledger.SwapResult)
	writeJSON(w, res.Status, api.SwapResponse{
		Success: body.Success,
		Message: body.Message,
		Wallet:  mapping.ToApiWallet(body.Wallet),
	})
}

// ListTransactions handles GET /transactions/{walletAddress}.
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "walletAddress")

	res := h.Ledger.ListTransactions(r.Context(), address)
	if !res.OK() {
		writeResult(w, res)
		return
	}
	writeJSON(w, res.Status, mapping.ToApiTransactions(res.Body.([]models.Transaction)))
}

// writeResult writes a non-2xx ledger result as the wire error shape.
func writeResult(w http.ResponseWriter, res ledger.Result) {
	writeJSON(w, res.Status, api.Error{Error: res.ErrorMessage()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
