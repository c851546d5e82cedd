package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/tokens"
)

const testDSN = "sqlite::memory:?_pragma=foreign_keys(1)"

type fakeIndex struct {
	mu      sync.Mutex
	docs    map[uint]models.Product
	failAll bool
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[uint]models.Product{}}
}

func (f *fakeIndex) IndexProduct(_ context.Context, p models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("index down")
	}
	f.docs[p.ID] = p
	return nil
}

func (f *fakeIndex) DeleteProduct(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("index down")
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ string, from, size int) (int64, []models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return 0, nil, errors.New("index down")
	}
	out := make([]models.Product, 0, len(f.docs))
	for _, p := range f.docs {
		out = append(out, p)
	}
	total := int64(len(out))
	if from >= len(out) {
		return total, nil, nil
	}
	end := min(from+size, len(out))
	return total, out[from:end], nil
}

type testEnv struct {
	Recorder *events.Recorder
	Index    *fakeIndex
	Tokens   *tokens.Issuer
	Users    *UserService
	Products *ProductService
	Orders   *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, testDSN)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	hasher, err := hash.NewHasher("test-pepper", bcrypt.MinCost)
	require.NoError(t, err)

	rec := &events.Recorder{}
	idx := newFakeIndex()
	issuer := tokens.NewIssuer([]byte("test-secret"))
	orders := &repo.OrderStore{DB: gdb}

	return &testEnv{
		Recorder: rec,
		Index:    idx,
		Tokens:   issuer,
		Users: &UserService{
			Users:  &repo.UserStore{DB: gdb, Hasher: hasher},
			Orders: orders,
			Tokens: issuer,
			Events: rec,
		},
		Products: &ProductService{
			Products: &repo.ProductStore{DB: gdb},
			Index:    idx,
			Events:   rec,
		},
		Orders: &OrderService{Orders: orders, Events: rec},
	}
}

func (env *testEnv) eventTypes() []string {
	var out []string
	for _, r := range env.Recorder.Events {
		switch e := r.Event.(type) {
		case events.UserEvent:
			out = append(out, e.Type)
		case events.ProductEvent:
			out = append(out, e.Type)
		case events.OrderEvent:
			out = append(out, e.Type)
		}
	}
	return out
}
