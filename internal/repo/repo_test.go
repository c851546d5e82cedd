package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/models"
)

const testDSN = "sqlite::memory:?_pragma=foreign_keys(1)"

type testEnv struct {
	DB       *gorm.DB
	Users    *UserStore
	Products *ProductStore
	Orders   *OrderStore
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

	return &testEnv{
		DB:       gdb,
		Users:    &UserStore{DB: gdb, Hasher: hasher},
		Products: &ProductStore{DB: gdb},
		Orders:   &OrderStore{DB: gdb},
	}
}

func (env *testEnv) mustUser(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := env.Users.Create(context.Background(), NewUser{
		Username: username, FirstName: "A", LastName: "B", Password: "p1",
	})
	require.NoError(t, err)
	return u
}

func (env *testEnv) mustProduct(t *testing.T, name string) *models.Product {
	t.Helper()
	p, err := env.Products.Create(context.Background(), models.Product{Name: name, Price: 9.99, Category: "tools"})
	require.NoError(t, err)
	return p
}

func TestStoreError_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := storeErr("could not get users", cause)

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "could not get users", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "could not get users. Error: connection refused", err.Error())
}

func TestStoreError_NotFoundIsDistinct(t *testing.T) {
	t.Parallel()

	err := storeErr("could not find product 3", gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	var se *StoreError
	assert.False(t, errors.As(err, &se))
	assert.Nil(t, storeErr("noop", nil))
}
