package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/models"
)

// sessionKey is the KV key the session snapshot is stored under.
const sessionKey = "dashboard_session"

// sessionSnapshot is the persisted subset of the state tree: the session
// email and the wallet record. In-flight operation status is deliberately
// not persisted — a reload should never resurrect a pending spinner.
type sessionSnapshot struct {
	User   UserState      `json:"user"`
	Wallet *models.Wallet `json:"wallet,omitempty"`
}

// SessionPersister saves a snapshot of the user and wallet slices after
// every dispatch so a page reload can rehydrate the session. Best-effort:
// malformed persisted blobs read as an empty session.
type SessionPersister struct {
	kv localstore.KV
}

// NewSessionPersister creates a persister over the given KV backend.
func NewSessionPersister(kv localstore.KV) *SessionPersister {
	return &SessionPersister{kv: kv}
}

// Save writes the current session snapshot, replacing the previous one.
func (p *SessionPersister) Save(s AppState) error {
	snapshot := sessionSnapshot{User: s.User, Wallet: s.Wallet.Wallet}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	if err := p.kv.Put(context.Background(), sessionKey, raw); err != nil {
		return fmt.Errorf("failed to persist session snapshot: %w", err)
	}
	return nil
}

// Hydrate merges the saved snapshot into the initial state. Absent or
// corrupt snapshots leave the initial state untouched.
func (p *SessionPersister) Hydrate(initial AppState) AppState {
	raw, err := p.kv.Get(context.Background(), sessionKey)
	if err != nil {
		return initial
	}
	var snapshot sessionSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return initial
	}
	initial.User = snapshot.User
	initial.Wallet.Wallet = snapshot.Wallet
	return initial
}

// Clear removes the persisted snapshot.
func (p *SessionPersister) Clear() error {
	return p.kv.Delete(context.Background(), sessionKey)
}
