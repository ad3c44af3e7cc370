package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobenna/walletdash/pkg/api"
	"github.com/tobenna/walletdash/pkg/handlers"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/storage"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := ledger.NewService(storage.NewKVStorage(localstore.NewMemoryKV()), nil)
	server := httptest.NewServer(handlers.NewLedgerHandler(svc).Routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createWallet(t *testing.T, server *httptest.Server, email string) api.CreateWalletResponse {
	t.Helper()
	resp := postJSON(t, server.URL+"/create/wallet", map[string]string{"user": email})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[api.CreateWalletResponse](t, resp)
}

func TestCreateWalletEndpoint(t *testing.T) {
	server := newServer(t)

	created := createWallet(t, server, "a@b.com")
	assert.Equal(t, "a@b.com", string(created.User.Email))
	assert.Equal(t, "a@b.com", string(created.Wallet.Email))
	assert.NotEmpty(t, created.Wallet.Address)
	assert.Equal(t, 0.0, created.Wallet.Balances["USD"])
}

func TestCreateWalletEndpointBadBody(t *testing.T) {
	server := newServer(t)

	resp, err := http.Post(server.URL+"/create/wallet", "application/json", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetWalletEndpoint(t *testing.T) {
	server := newServer(t)

	t.Run("NotFound", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/wallet/nobody@b.com")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decode[api.Error](t, resp)
		assert.Equal(t, "wallet not found", body.Error)
	})

	t.Run("Found", func(t *testing.T) {
		created := createWallet(t, server, "a@b.com")

		resp, err := http.Get(server.URL + "/wallet/a@b.com")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		wallet := decode[api.Wallet](t, resp)
		assert.Equal(t, created.Wallet.Address, wallet.Address)
	})
}

func TestDepositEndpoint(t *testing.T) {
	server := newServer(t)
	createWallet(t, server, "a@b.com")

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/deposit", api.DepositRequest{
			Email: "a@b.com", Amount: 500, Currency: "USD",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[api.DepositResponse](t, resp)
		assert.True(t, body.Success)
		assert.Equal(t, 500.0, body.Wallet.Balances["USD"])
	})

	t.Run("InvalidCurrency", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/deposit", api.DepositRequest{
			Email: "a@b.com", Amount: 10, Currency: "XAU",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTransferAndHistoryEndpoints(t *testing.T) {
	server := newServer(t)
	sender := createWallet(t, server, "a@b.com")
	receiver := createWallet(t, server, "c@d.com")

	resp := postJSON(t, server.URL+"/deposit", api.DepositRequest{Email: "a@b.com", Amount: 500, Currency: "USD"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, server.URL+"/transfer", api.TransferRequest{
		FromEmail:       "a@b.com",
		ToWalletAddress: receiver.Wallet.Address,
		Amount:          200,
		FromCurrency:    "USD",
		ToCurrency:      "USD",
		ConvertedAmount: 200,
		ExchangeRate:    1.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	transfer := decode[api.TransferResponse](t, resp)
	assert.Equal(t, 300.0, transfer.SenderWallet.Balances["USD"])
	assert.Equal(t, 200.0, transfer.ReceiverWallet.Balances["USD"])

	t.Run("History", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/transactions/" + sender.Wallet.Address)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		txs := decode[[]api.Transaction](t, resp)
		assert.Len(t, txs, 2)
	})

	t.Run("PaginatedSuffixAcceptedAndIgnored", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/transactions/" + sender.Wallet.Address + "/paginated")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		txs := decode[[]api.Transaction](t, resp)
		assert.Len(t, txs, 2)
	})
}

func TestSwapEndpoint(t *testing.T) {
	server := newServer(t)
	createWallet(t, server, "a@b.com")

	resp := postJSON(t, server.URL+"/deposit", api.DepositRequest{Email: "a@b.com", Amount: 200, Currency: "USD"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, server.URL+"/swap", api.SwapRequest{
		FromEmail:       "a@b.com",
		Amount:          150,
		FromCurrency:    "USD",
		ToCurrency:      "GBP",
		ConvertedAmount: 120,
		ExchangeRate:    0.8,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[api.SwapResponse](t, resp)
	assert.Equal(t, 50.0, body.Wallet.Balances["USD"])
	assert.Equal(t, 120.0, body.Wallet.Balances["GBP"])
}

func TestInsufficientBalanceEndpoint(t *testing.T) {
	server := newServer(t)
	createWallet(t, server, "a@b.com")
	receiver := createWallet(t, server, "c@d.com")

	resp := postJSON(t, server.URL+"/transfer", api.TransferRequest{
		FromEmail:       "a@b.com",
		ToWalletAddress: receiver.Wallet.Address,
		Amount:          50,
		FromCurrency:    "USD",
		ToCurrency:      "USD",
		ConvertedAmount: 50,
		ExchangeRate:    1.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[api.Error](t, resp)
	assert.Equal(t, "insufficient balance", body.Error)
}
