// Package mocks provides testify mocks for the effect-layer dependencies.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/models"
)

// Ledger is a mock of the state.Ledger interface.
type Ledger struct {
	mock.Mock
}

func (m *Ledger) CreateWallet(ctx context.Context, email string) ledger.Result {
	args := m.Called(ctx, email)
	return args.Get(0).(ledger.Result)
}

func (m *Ledger) GetWallet(ctx context.Context, email string) ledger.Result {
	args := m.Called(ctx, email)
	return args.Get(0).(ledger.Result)
}

func (m *Ledger) Deposit(ctx context.Context, p ledger.DepositParams) ledger.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(ledger.Result)
}

func (m *Ledger) Transfer(ctx context.Context, p ledger.TransferParams) ledger.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(ledger.Result)
}

func (m *Ledger) Swap(ctx context.Context, p ledger.SwapParams) ledger.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(ledger.Result)
}

func (m *Ledger) ListTransactions(ctx context.Context, walletAddress string) ledger.Result {
	args := m.Called(ctx, walletAddress)
	return args.Get(0).(ledger.Result)
}

// Rates is a mock of the state.Rates interface.
type Rates struct {
	mock.Mock
}

func (m *Rates) Latest(ctx context.Context, base models.Currency, symbols []models.Currency) (*models.ExchangeRateSnapshot, error) {
	args := m.Called(ctx, base, symbols)
	if snapshot := args.Get(0); snapshot != nil {
		return snapshot.(*models.ExchangeRateSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Rates) Convert(ctx context.Context, from, to models.Currency, amount float64) (*models.ConversionResult, error) {
	args := m.Called(ctx, from, to, amount)
	if result := args.Get(0); result != nil {
		return result.(*models.ConversionResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Rates) Historical(ctx context.Context, base, symbol models.Currency, start, end time.Time) ([]models.RatePoint, error) {
	args := m.Called(ctx, base, symbol, start, end)
	if points := args.Get(0); points != nil {
		return points.([]models.RatePoint), args.Error(1)
	}
	return nil, args.Error(1)
}
