package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/models"
)

func TestSessionRoundTrip(t *testing.T) {
	kv := localstore.NewMemoryKV()
	wallet := models.Wallet{Address: "1234567890", Email: "a@b.com", Balances: models.ZeroBalances()}
	wallet.Balances[models.USD] = 300

	first := NewStore(WithPersistence(NewSessionPersister(kv)))
	first.Dispatch(WalletCreated{User: models.User{Email: "a@b.com"}, Wallet: wallet})

	// A second store over the same KV simulates a page reload.
	second := NewStore(WithPersistence(NewSessionPersister(kv)))
	s := second.State()

	assert.Equal(t, "a@b.com", SelectEmail(s))
	require.NotNil(t, SelectWallet(s))
	assert.Equal(t, "1234567890", SelectWallet(s).Address)
	assert.Equal(t, 300.0, SelectWallet(s).Balances[models.USD])
}

func TestHydrateDoesNotResurrectPendingOps(t *testing.T) {
	kv := localstore.NewMemoryKV()

	first := NewStore(WithPersistence(NewSessionPersister(kv)))
	first.Dispatch(DepositRequested{Email: "a@b.com", Amount: 10, Currency: models.USD})

	second := NewStore(WithPersistence(NewSessionPersister(kv)))
	assert.Equal(t, OpStatus{}, SelectOpStatus(second.State(), WalletOpDeposit))
}

func TestHydrateMalformedSnapshot(t *testing.T) {
	kv := localstore.NewMemoryKV()
	require.NoError(t, kv.Put(context.Background(), sessionKey, []byte("{broken")))

	store := NewStore(WithPersistence(NewSessionPersister(kv)))
	s := store.State()

	assert.Empty(t, SelectEmail(s))
	assert.Nil(t, SelectWallet(s))
}

func TestHydrateAbsentSnapshot(t *testing.T) {
	store := NewStore(WithPersistence(NewSessionPersister(localstore.NewMemoryKV())))
	assert.Equal(t, InitialState(), store.State())
}

func TestPersisterClear(t *testing.T) {
	kv := localstore.NewMemoryKV()
	p := NewSessionPersister(kv)

	s := InitialState()
	s.User.Email = "a@b.com"
	require.NoError(t, p.Save(s))
	require.NoError(t, p.Clear())

	assert.Equal(t, InitialState(), p.Hydrate(InitialState()))
}

func TestStoreSubscribe(t *testing.T) {
	store := NewStore()

	var got []string
	unsubscribe := store.Subscribe(func(s AppState) {
		got = append(got, s.User.Email)
	})

	store.Dispatch(SetEmail{Email: "a@b.com"})
	unsubscribe()
	store.Dispatch(SetEmail{Email: "c@d.com"})

	require.Len(t, got, 1)
	assert.Equal(t, "a@b.com", got[0])
	assert.Equal(t, "c@d.com", store.State().User.Email)
}
