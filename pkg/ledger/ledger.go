package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tobenna/walletdash/pkg/models"
	"github.com/tobenna/walletdash/pkg/storage"
)

// Result is the structured outcome of every ledger operation. Handlers
// never panic or return Go errors to the caller; failures travel as a
// non-2xx status with an ErrorBody, mirroring an HTTP exchange.
type Result struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

// OK reports whether the result carries a 2xx status.
func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// ErrorBody is the failure payload for non-2xx results.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorMessage extracts the failure message from a non-2xx result body.
func (r Result) ErrorMessage() string {
	if body, ok := r.Body.(ErrorBody); ok {
		return body.Error
	}
	return ""
}

// CreateWalletResult is returned by a successful wallet creation.
type CreateWalletResult struct {
	User   models.User   `json:"user"`
	Wallet models.Wallet `json:"wallet"`
}

// DepositResult is returned by a successful deposit.
type DepositResult struct {
	Success bool          `json:"success"`
	Wallet  models.Wallet `json:"wallet"`
	Message string        `json:"message"`
}

// TransferResult is returned by a successful transfer.
type TransferResult struct {
	Success        bool          `json:"success"`
	Message        string        `json:"message"`
	SenderWallet   models.Wallet `json:"senderWallet"`
	ReceiverWallet models.Wallet `json:"receiverWallet"`
}

// SwapResult is returned by a successful swap.
type SwapResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Wallet  models.Wallet `json:"wallet"`
}

// DepositParams are the inputs to a deposit operation.
type DepositParams struct {
	Email    string
	Amount   float64
	Currency models.Currency
}

// TransferParams are the inputs to a transfer between two wallets.
type TransferParams struct {
	FromEmail       string
	ToWalletAddress string
	Amount          float64
	FromCurrency    models.Currency
	ToCurrency      models.Currency
	ConvertedAmount float64
	ExchangeRate    float64
}

// SwapParams are the inputs to a swap between two currency slots of one wallet.
type SwapParams struct {
	FromEmail       string
	Amount          float64
	FromCurrency    models.Currency
	ToCurrency      models.Currency
	ConvertedAmount float64
	ExchangeRate    float64
}

// Service is the mock ledger: a simulated wallet backend over the storage
// layer. Amount validation (amount > 0) is the form layer's job upstream;
// the ledger only enforces wallet existence, currency membership, and
// sufficient balance.
type Service struct {
	store   storage.Storage
	logger  *zap.Logger
	latency time.Duration
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLatency inserts an artificial delay before every operation to
// simulate network round-trip time.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a mock ledger over the given storage.
func NewService(store storage.Storage, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{store: store, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// delay blocks for the configured artificial latency, honoring cancellation.
func (s *Service) delay(ctx context.Context) {
	if s.latency <= 0 {
		return
	}
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
	}
}

// CreateWallet generates a fresh zero-balance wallet for the email and
// registers the user. Duplicate emails are not rejected.
func (s *Service) CreateWallet(ctx context.Context, email string) Result {
	s.delay(ctx)

	wallet := &models.Wallet{
		Id:        uuid.New().String(),
		Email:     email,
		Address:   NewAddress(),
		Balances:  models.ZeroBalances(),
		CreatedAt: s.now(),
	}
	user := &models.User{Email: email}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return s.internalError("create user", err)
	}
	if _, err := s.store.CreateWallet(ctx, wallet); err != nil {
		return s.internalError("create wallet", err)
	}

	s.logger.Info("wallet created",
		zap.String("email", email),
		zap.String("address", wallet.Address))

	return Result{Status: http.StatusOK, Body: CreateWalletResult{User: *user, Wallet: *wallet}}
}

// GetWallet resolves a wallet by owning email.
func (s *Service) GetWallet(ctx context.Context, email string) Result {
	s.delay(ctx)

	wallet, err := s.store.GetWalletByEmail(ctx, email)
	if err != nil {
		if storage.IsNotFound(err) {
			return Result{Status: http.StatusNotFound, Body: ErrorBody{Error: "wallet not found"}}
		}
		return s.internalError("get wallet", err)
	}
	return Result{Status: http.StatusOK, Body: *wallet}
}

// Deposit credits a wallet's currency slot and records a credit transaction.
func (s *Service) Deposit(ctx context.Context, p DepositParams) Result {
	s.delay(ctx)

	wallet, err := s.store.GetWalletByEmail(ctx, p.Email)
	if err != nil {
		if storage.IsNotFound(err) {
			return Result{Status: http.StatusNotFound, Body: ErrorBody{Error: "wallet not found"}}
		}
		return s.internalError("get wallet", err)
	}
	if !p.Currency.IsSupported() {
		return Result{Status: http.StatusBadRequest, Body: ErrorBody{Error: "invalid currency"}}
	}

	wallet.Balances = wallet.Balances.Clone()
	wallet.Balances[p.Currency] += p.Amount
	if _, err := s.store.UpdateWallet(ctx, wallet); err != nil {
		return s.internalError("update wallet", err)
	}

	tx := &models.Transaction{
		Id:            uuid.New().String(),
		Email:         p.Email,
		WalletAddress: wallet.Address,
		Amount:        p.Amount,
		Type:          models.TransactionDeposit,
		Direction:     models.DirectionCredit,
		Currency:      p.Currency,
		CreatedAt:     s.now(),
	}
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return s.internalError("append transaction", err)
	}

	s.logger.Info("deposit applied",
		zap.String("email", p.Email),
		zap.Float64("amount", p.Amount),
		zap.String("currency", string(p.Currency)))

	return Result{Status: http.StatusOK, Body: DepositResult{
		Success: true,
		Wallet:  *wallet,
		Message: fmt.Sprintf("Deposited %.2f %s", p.Amount, p.Currency),
	}}
}

// Transfer debits the sender's fromCurrency and credits the receiver's
// toCurrency with the pre-converted amount, appending a debit record for
// the sender and a credit record for the receiver.
func (s *Service) Transfer(ctx context.Context, p TransferParams) Result {
	s.delay(ctx)

	sender, err := s.store.GetWalletByEmail(ctx, p.FromEmail)
	if err != nil {
		if storage.IsNotFound(err) {
			return Result{Status: http.StatusNotFound, Body: ErrorBody{Error: "sender wallet not found"}}
		}
		return s.internalError("get sender wallet", err)
	}
	receiver, err := s.store.GetWalletByAddress(ctx, p.ToWalletAddress)
	if err != nil {
		if storage.IsNotFound(err) {
			return Result{Status: http.StatusNotFound, Body: ErrorBody{Error: "receiver wallet not found"}}
		}
		return s.internalError("get receiver wallet", err)
	}
	if !p.FromCurrency.IsSupported() || !p.ToCurrency.IsSupported() {
		return Result{Status: http.StatusBadRequest, Body: ErrorBody{Error: "invalid currency"}}
	}
	if p.Amount > sender.Balances[p.FromCurrency] {
		return Result{Status: http.StatusBadRequest, Body: ErrorBody{Error: "insufficient balance"}}
	}

	sender.Balances = sender.Balances.Clone()
	sender.Balances[p.FromCurrency] -= p.Amount
	if _, err := s.store.UpdateWallet(ctx, sender); err != nil {
		return s.internalError("update sender wallet", err)
	}

	// Re-resolve the receiver after the sender write so a self-transfer
	// sees the debited balances instead of a stale read.
	receiver, err = s.store.GetWalletByAddress(ctx, receiver.Address)
	if err != nil {
		return s.internalError("reload receiver wallet", err)
	}
	receiver.Balances = receiver.Balances.Clone()
	receiver.Balances[p.ToCurrency] += p.ConvertedAmount
	if _, err := s.store.UpdateWallet(ctx, receiver); err != nil {
		return s.internalError("update receiver wallet", err)
	}

	now := s.now()
	debit := &models.Transaction{
		Id:            uuid.New().String(),
		Email:         sender.Email,
		WalletAddress: sender.Address,
		ToAddress:     receiver.Address,
		Amount:        p.Amount,
		Type:          models.TransactionTransfer,
		Direction:     models.DirectionDebit,
		Currency:      p.FromCurrency,
		CreatedAt:     now,
	}
	credit := &models.Transaction{
		Id:            uuid.New().String(),
		Email:         receiver.Email,
		WalletAddress: receiver.Address,
		Amount:        p.ConvertedAmount,
		Type:          models.TransactionTransfer,
		Direction:     models.DirectionCredit,
		Currency:      p.ToCurrency,
		CreatedAt:     now,
	}
	if err := s.store.AppendTransaction(ctx, debit); err != nil {
		return s.internalError("append debit transaction", err)
	}
	if err := s.store.AppendTransaction(ctx, credit); err != nil {
		return s.internalError("append credit transaction", err)
	}

	s.logger.Info("transfer applied",
		zap.String("from", sender.Address),
		zap.String("to", receiver.Address),
		zap.Float64("amount", p.Amount),
		zap.Float64("converted", p.ConvertedAmount))

	return Result{Status: http.StatusOK, Body: TransferResult{
		Success:        true,
		Message:        fmt.Sprintf("Transferred %.2f %s", p.Amount, p.FromCurrency),
		SenderWallet:   *sender,
		ReceiverWallet: *receiver,
	}}
}

// Swap converts between two currency slots of a single wallet and appends
// exactly one self-contained swap record.
func (s *Service) Swap(ctx context.Context, p SwapParams) Result {
	s.delay(ctx)

	wallet, err := s.store.GetWalletByEmail(ctx, p.FromEmail)
	if err != nil {
		if storage.IsNotFound(err) {
			return Result{Status: http.StatusNotFound, Body: ErrorBody{Error: "wallet not found"}}
		}
		return s.internalError("get wallet", err)
	}
	if !p.FromCurrency.IsSupported() || !p.ToCurrency.IsSupported() {
		return Result{Status: http.StatusBadRequest, Body: ErrorBody{Error: "invalid currency"}}
	}
	if p.Amount > wallet.Balances[p.FromCurrency] {
		return Result{Status: http.StatusBadRequest, Body: ErrorBody{Error: "insufficient balance"}}
	}

	wallet.Balances = wallet.Balances.Clone()
	wallet.Balances[p.FromCurrency] -= p.Amount
	wallet.Balances[p.ToCurrency] += p.ConvertedAmount
	if _, err := s.store.UpdateWallet(ctx, wallet); err != nil {
		return s.internalError("update wallet", err)
	}

	tx := &models.Transaction{
		Id:            uuid.New().String(),
		Email:         wallet.Email,
		WalletAddress: wallet.Address,
		Amount:        p.Amount,
		Type:          models.TransactionSwap,
		Currency:      p.FromCurrency,
		CreatedAt:     s.now(),
	}
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return s.internalError("append transaction", err)
	}

	s.logger.Info("swap applied",
		zap.String("email", p.FromEmail),
		zap.String("from", string(p.FromCurrency)),
		zap.String("to", string(p.ToCurrency)),
		zap.Float64("amount", p.Amount))

	return Result{Status: http.StatusOK, Body: SwapResult{
		Success: true,
		Message: fmt.Sprintf("Swapped %.2f %s to %s", p.Amount, p.FromCurrency, p.ToCurrency),
		Wallet:  *wallet,
	}}
}

// ListTransactions returns the full transaction history for a wallet
// address. Pagination is the client's concern; the ledger always returns
// the complete filtered set.
func (s *Service) ListTransactions(ctx context.Context, walletAddress string) Result {
	s.delay(ctx)

	transactions, err := s.store.ListTransactionsByAddress(ctx, walletAddress)
	if err != nil {
		return s.internalError("list transactions", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return Result{Status: http.StatusOK, Body: transactions}
}

func (s *Service) internalError(op string, err error) Result {
	s.logger.Error("ledger operation failed", zap.String("op", op), zap.Error(err))
	return Result{Status: http.StatusInternalServerError, Body: ErrorBody{Error: "internal error"}}
}
