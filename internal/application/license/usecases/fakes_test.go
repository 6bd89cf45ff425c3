package usecases

import (
	"context"
	"sync"
	"time"

	"modgate/internal/domain/license"
	"modgate/internal/domain/registry"
)

type fakeIdentity struct {
	account string
	err     error
}

func (f *fakeIdentity) Verify(_ context.Context, _ string, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.account, nil
}

// fakeKeyRepo models the store's conditional-update semantics: the
// unused-to-used flip happens under a single lock, so concurrent
// redemptions of one key resolve to exactly one winner.
type fakeKeyRepo struct {
	mu   sync.Mutex
	keys map[string]*license.Key
	err  error
}

func newFakeKeyRepo() *fakeKeyRepo {
	return &fakeKeyRepo{keys: make(map[string]*license.Key)}
}

func (f *fakeKeyRepo) Create(_ context.Context, key *license.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.keys[key.KeyID()] = key
	return nil
}

func (f *fakeKeyRepo) GetByKeyID(_ context.Context, keyID string) (*license.Key, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key, ok := f.keys[keyID]
	if !ok {
		return nil, license.ErrKeyNotFound
	}
	copied, err := license.ReconstructKey(
		key.ID(), key.KeyID(), key.Status(), key.DurationHours(),
		key.Metadata(), key.RedeemedBy(), key.RedeemedAt(),
		key.CreatedAt(), key.UpdatedAt(),
	)
	if err != nil {
		return nil, err
	}
	return copied, nil
}

func (f *fakeKeyRepo) Redeem(_ context.Context, keyID string, accountID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	key, ok := f.keys[keyID]
	if !ok {
		return license.ErrKeyNotFound
	}
	return key.Redeem(accountID, at)
}

func (f *fakeKeyRepo) List(_ context.Context) ([]*license.Key, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*license.Key, 0, len(f.keys))
	for _, key := range f.keys {
		out = append(out, key)
	}
	return out, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*license.Session
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*license.Session)}
}

func (f *fakeSessionRepo) GetByAccount(_ context.Context, accountID string) (*license.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	session, ok := f.sessions[accountID]
	if !ok {
		return nil, license.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Upsert(_ context.Context, session *license.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	copied := *session
	f.sessions[session.AccountID] = &copied
	return nil
}

func (f *fakeSessionRepo) DeleteByAccount(_ context.Context, accountID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.sessions[accountID]
	delete(f.sessions, accountID)
	return ok, nil
}

type fakeFileRepo struct {
	mu      sync.Mutex
	entries map[string]*registry.FileEntry
	err     error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{entries: make(map[string]*registry.FileEntry)}
}

func (f *fakeFileRepo) GetByName(_ context.Context, name string) (*registry.FileEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	entry, ok := f.entries[name]
	if !ok {
		return nil, registry.ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeFileRepo) Upsert(_ context.Context, entry *registry.FileEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	copied := *entry
	f.entries[entry.Name] = &copied
	return nil
}

func (f *fakeFileRepo) Delete(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.entries[name]
	delete(f.entries, name)
	return ok, nil
}

func (f *fakeFileRepo) List(_ context.Context) ([]*registry.FileEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*registry.FileEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		out = append(out, entry)
	}
	return out, nil
}

// fakeTxManager runs the function directly; the fakes apply their mutations
// immediately, which is sufficient for exercising the engine's control flow.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeSender) SendLicenseKey(to, key string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+" "+key)
	return nil
}
